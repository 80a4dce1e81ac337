package entity

// LineItem is a single garment line on an order. Price is the unit price
// captured when the order was saved; totals for persisted orders are never
// recomputed from the live price table.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal returns the line amount at the captured unit price.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Order is a persisted ledger entry. Field names match the serialized
// ledger document; ids are strings because draft-submitted orders carry
// sequential numeric ids while checkout-originated orders carry
// timestamp-based ones.
type Order struct {
	ID                 string     `json:"id"`
	BillNo             string     `json:"billNo"`
	CustomerName       string     `json:"customerName"`
	TeleNo             string     `json:"teleNo"`
	Address            string     `json:"address"`
	OrderDate          string     `json:"orderDate"`
	Service            string     `json:"service"`
	Delivery           string     `json:"delivery"`
	Type               string     `json:"type"`
	Items              []LineItem `json:"items"`
	Advance            float64    `json:"advance"`
	Total              float64    `json:"total"`
	Balance            float64    `json:"balance"`
	IsDelivered        bool       `json:"isDelivered"`
	ActualDeliveryDate *string    `json:"actualDeliveryDate"`
	CustomerPayment    *float64   `json:"customerPayment"`
}

// OrderDraft is the in-progress order being assembled at the counter.
// It holds no captured prices; line prices are attached when the draft is
// submitted, and totals are recomputed from the price table on every read.
type OrderDraft struct {
	BillNo       string     `json:"billNo"`
	CustomerName string     `json:"customerName"`
	TeleNo       string     `json:"teleNo"`
	Address      string     `json:"address"`
	OrderDate    string     `json:"orderDate"`
	Service      string     `json:"service"`
	Delivery     string     `json:"delivery"`
	Type         string     `json:"type"`
	Items        []LineItem `json:"items"`
	Advance      float64    `json:"advance"`
}

// HasItem reports whether an item with the given name is selected.
func (d OrderDraft) HasItem(name string) bool {
	for _, item := range d.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the draft.
func (d *OrderDraft) Clone() OrderDraft {
	out := *d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() Order {
	out := *o
	out.Items = make([]LineItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.ActualDeliveryDate != nil {
		date := *o.ActualDeliveryDate
		out.ActualDeliveryDate = &date
	}
	if o.CustomerPayment != nil {
		payment := *o.CustomerPayment
		out.CustomerPayment = &payment
	}
	return out
}

package request

// OrderItemRequest is one line in an order payload
type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}

// OrderRequest carries the content fields of a ledger entry for direct
// create or update. Delivery-owned fields are not accepted here.
type OrderRequest struct {
	BillNo       string             `json:"billNo"`
	CustomerName string             `json:"customerName"`
	TeleNo       string             `json:"teleNo"`
	Address      string             `json:"address"`
	OrderDate    string             `json:"orderDate"`
	Service      string             `json:"service"`
	Delivery     string             `json:"delivery"`
	Type         string             `json:"type"`
	Items        []OrderItemRequest `json:"items"`
	Advance      float64            `json:"advance"`
	Total        float64            `json:"total"`
	Balance      float64            `json:"balance"`
}

// DeliveryEditRequest is a full-row edit from the delivered orders view.
// Payment arrives as raw text and must parse as a number.
type DeliveryEditRequest struct {
	BillNo             string `json:"billNo"`
	CustomerName       string `json:"customerName"`
	TeleNo             string `json:"teleNo"`
	Address            string `json:"address"`
	ActualDeliveryDate string `json:"actualDeliveryDate"`
	CustomerPayment    string `json:"customerPayment"`
}

// SetDeliveredStatusRequest flips the delivered flag on an order
type SetDeliveredStatusRequest struct {
	Delivered *bool `json:"delivered" binding:"required"`
}

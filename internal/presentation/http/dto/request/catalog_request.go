package request

// CatalogItemRequest registers or updates a price-card item. Price
// arrives as raw text and must parse as a number.
type CatalogItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Service  string `json:"service"`
	Delivery string `json:"delivery"`
	Price    string `json:"price"`
}

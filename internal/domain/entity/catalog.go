package entity

// CatalogItem is a registered price-card entry: one garment in one
// category, priced for a specific service and delivery combination.
type CatalogItem struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Item     string  `json:"item"`
	Service  string  `json:"service"`
	Delivery string  `json:"delivery"`
	Price    float64 `json:"price"`
}

package request

// SetFieldRequest updates one scalar draft field
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ToggleItemRequest toggles one item in the draft selection
type ToggleItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetQuantityRequest sets the quantity of a selected item. The quantity
// arrives as raw text and is coerced server-side.
type SetQuantityRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
}

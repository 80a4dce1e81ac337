package request

// PrepareCheckoutRequest starts a delivery checkout for a bill number
type PrepareCheckoutRequest struct {
	BillNo string `json:"billNo"`
}

// ConfirmCheckoutRequest finalizes the prepared checkout. Payment
// arrives as raw text and must parse as a number.
type ConfirmCheckoutRequest struct {
	ActualDeliveryDate string `json:"actualDeliveryDate"`
	CustomerPayment    string `json:"customerPayment"`
}

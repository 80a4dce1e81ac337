package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/application/service"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/request"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles the delivery checkout flow endpoints
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Prepare starts a checkout for a bill number
// @Router /checkout/prepare [post]
func (h *CheckoutHandler) Prepare(c *gin.Context) {
	var req request.PrepareCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	candidate, err := h.checkoutService.Prepare(req.BillNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Ready to process delivery for Bill No: "+candidate.BillNo, candidate)
}

// Confirm finalizes the prepared checkout as a delivered ledger entry
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req request.ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.checkoutService.Confirm(c.Request.Context(), req.ActualDeliveryDate, req.CustomerPayment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill No: "+order.BillNo+" marked as delivered", order)
}

// Cancel abandons the current checkout
// @Router /checkout [delete]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	h.checkoutService.Cancel()
	response.OK(c, "Checkout cancelled", h.checkoutService.Status())
}

// Status returns the current checkout state and candidate
// @Router /checkout [get]
func (h *CheckoutHandler) Status(c *gin.Context) {
	response.OK(c, "Checkout status", h.checkoutService.Status())
}

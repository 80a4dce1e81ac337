package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/application/service"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/request"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/response"
)

// DraftHandler handles the in-flight order draft endpoints
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Get returns the current draft with computed totals
// @Router /draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	response.OK(c, "Draft retrieved", h.draftService.Snapshot())
}

// SetField updates one scalar draft field
// @Router /draft/fields [put]
func (h *DraftHandler) SetField(c *gin.Context) {
	var req request.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.draftService.SetField(req.Field, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Field updated", h.draftService.Snapshot())
}

// ToggleItem adds or removes an item from the draft selection
// @Router /draft/items/toggle [post]
func (h *DraftHandler) ToggleItem(c *gin.Context) {
	var req request.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.draftService.ToggleItem(req.Name)
	response.OK(c, "Item toggled", h.draftService.Snapshot())
}

// SetQuantity sets the quantity of a selected item
// @Router /draft/items/quantity [put]
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.draftService.SetQuantity(req.Name, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", h.draftService.Snapshot())
}

// Submit saves the draft to the ledger
// @Router /draft/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	order, err := h.draftService.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order saved successfully", order)
}

// Reset clears the draft
// @Router /draft [delete]
func (h *DraftHandler) Reset(c *gin.Context) {
	h.draftService.Reset()
	response.OK(c, "Draft reset", h.draftService.Snapshot())
}

// LoadOrder populates the draft from an existing order for editing
// @Router /draft/load/:id [post]
func (h *DraftHandler) LoadOrder(c *gin.Context) {
	view, err := h.draftService.LoadOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order loaded for editing", view)
}

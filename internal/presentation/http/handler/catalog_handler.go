package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/application/service"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/request"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles price-card item registration HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog item id")
		return 0, false
	}
	return id, true
}

func toCatalogInput(req *request.CatalogItemRequest) *service.CatalogItemInput {
	return &service.CatalogItemInput{
		Category: req.Category,
		Item:     req.Item,
		Service:  req.Service,
		Delivery: req.Delivery,
		Price:    req.Price,
	}
}

// List returns all registered price-card items
// @Router /catalog/items [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog items retrieved", items)
}

// Get returns one price-card item
// @Router /catalog/items/:id [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog item retrieved", item)
}

// Create registers a new price-card item
// @Router /catalog/items [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.Create(c.Request.Context(), toCatalogInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Catalog item registered", item)
}

// Update overwrites an existing price-card item
// @Router /catalog/items/:id [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req request.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.Update(c.Request.Context(), id, toCatalogInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog item updated", item)
}

// Delete removes a price-card item
// @Router /catalog/items/:id [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog item deleted", nil)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/application/service"
	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/request"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/response"
	"github.com/washlane/laundry-api/pkg/pagination"
)

// OrderHandler handles order ledger HTTP requests
type OrderHandler struct {
	orderService    *service.OrderService
	draftService    *service.DraftService
	checkoutService *service.CheckoutService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, draftService *service.DraftService, checkoutService *service.CheckoutService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		draftService:    draftService,
		checkoutService: checkoutService,
	}
}

func toEntityOrder(req *request.OrderRequest) *entity.Order {
	items := make([]entity.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.LineItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price}
	}
	return &entity.Order{
		BillNo:       req.BillNo,
		CustomerName: req.CustomerName,
		TeleNo:       req.TeleNo,
		Address:      req.Address,
		OrderDate:    req.OrderDate,
		Service:      req.Service,
		Delivery:     req.Delivery,
		Type:         req.Type,
		Items:        items,
		Advance:      req.Advance,
		Total:        req.Total,
		Balance:      req.Balance,
	}
}

// List returns ledger entries, optionally filtered by delivered status
// and paginated
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var delivered *bool
	if raw, ok := c.GetQuery("delivered"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "Invalid delivered filter")
			return
		}
		delivered = &parsed
	}

	orders, err := h.orderService.List(c.Request.Context(), delivered)
	if err != nil {
		response.Error(c, err)
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	result := pagination.Paginate(orders, params)
	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get returns one ledger entry
// @Router /orders/:id [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved", order)
}

// Create adds a new ledger entry with the next sequential id
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Add(c.Request.Context(), toEntityOrder(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order added successfully", order)
}

// Update overwrites an entry's content fields, preserving the
// delivery-owned ones
// @Router /orders/:id [put]
func (h *OrderHandler) Update(c *gin.Context) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), c.Param("id"), toEntityOrder(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated successfully", order)
}

// UpdateDelivery applies a validated edit from the delivered orders view
// @Router /orders/:id/delivery [put]
func (h *OrderHandler) UpdateDelivery(c *gin.Context) {
	var req request.DeliveryEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateDelivery(c.Request.Context(), c.Param("id"), &service.DeliveryEditInput{
		BillNo:             req.BillNo,
		CustomerName:       req.CustomerName,
		TeleNo:             req.TeleNo,
		Address:            req.Address,
		ActualDeliveryDate: req.ActualDeliveryDate,
		CustomerPayment:    req.CustomerPayment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated successfully", order)
}

// Delete removes an entry permanently. A draft editing this order or a
// checkout holding it as candidate is reset.
// @Router /orders/:id [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.orderService.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.draftService.ClearIfEditing(id)
	h.checkoutService.ClearIfCandidate(id)

	response.OK(c, "Order deleted successfully", nil)
}

// SetDeliveredStatus flips the delivered flag
// @Router /orders/:id/status [put]
func (h *OrderHandler) SetDeliveredStatus(c *gin.Context) {
	var req request.SetDeliveredStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.SetDeliveredStatus(c.Request.Context(), c.Param("id"), *req.Delivered)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := "Pending"
	if order.IsDelivered {
		status = "Delivered"
	}
	response.OK(c, "Order status changed to "+status, order)
}

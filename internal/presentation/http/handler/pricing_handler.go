package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/domain/pricing"
	"github.com/washlane/laundry-api/internal/presentation/http/dto/response"
)

// PricingHandler exposes the configured price table
type PricingHandler struct {
	prices *pricing.PriceList
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(prices *pricing.PriceList) *PricingHandler {
	return &PricingHandler{prices: prices}
}

// List returns the full price table
// @Router /prices [get]
func (h *PricingHandler) List(c *gin.Context) {
	response.OK(c, "Price table retrieved", gin.H{
		"items":  h.prices.Items(),
		"prices": h.prices.Table(),
	})
}

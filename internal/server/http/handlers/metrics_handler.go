package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curatebox/boxops/internal/server/http/dto"
	"github.com/curatebox/boxops/internal/usecase"
)

// MetricsHandler serves derived dashboard metrics.
type MetricsHandler struct {
	facade DashboardFacade
}

// NewMetricsHandler constructs MetricsHandler.
func NewMetricsHandler(facade DashboardFacade) *MetricsHandler {
	return &MetricsHandler{facade: facade}
}

// Inventory handles GET /api/metrics/inventory.
func (h *MetricsHandler) Inventory(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewInventoryMetricsResponse(products, usecase.LowStockItems(products)))
}

// Fulfillment handles GET /api/metrics/fulfillment.
func (h *MetricsHandler) Fulfillment(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	buckets := usecase.CountFulfillmentBuckets(orders)
	urgent := usecase.UrgentOrders(orders, 0)
	c.JSON(http.StatusOK, dto.NewFulfillmentMetricsResponse(buckets, urgent))
}

// Economics handles GET /api/metrics/economics.
func (h *MetricsHandler) Economics(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewEconomicsResponse(h.facade.DraftEconomics()))
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/server/http/dto"
)

// FulfillmentHandler manages the fulfillment queue endpoints.
type FulfillmentHandler struct {
	facade FulfillmentFacade
}

// NewFulfillmentHandler constructs FulfillmentHandler.
func NewFulfillmentHandler(facade FulfillmentFacade) *FulfillmentHandler {
	return &FulfillmentHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *FulfillmentHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Advance handles POST /api/orders/:id/advance.
func (h *FulfillmentHandler) Advance(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	orders, err := h.facade.AdvanceOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrUnknownStatus):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

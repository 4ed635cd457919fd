package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/server/http/dto"
)

// CustomerHandler manages subscriber endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponses(customers))
}

// ToggleStatus handles POST /api/customers/:id/status/toggle.
func (h *CustomerHandler) ToggleStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	customers, err := h.facade.ToggleCustomerStatus(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, dto.NewCustomerResponses(customers))
}

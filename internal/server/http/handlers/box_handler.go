package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/server/http/dto"
)

// BoxHandler manages box assembly and selection endpoints.
type BoxHandler struct {
	facade BoxFacade
}

// NewBoxHandler constructs BoxHandler.
func NewBoxHandler(facade BoxFacade) *BoxHandler {
	return &BoxHandler{facade: facade}
}

// List handles GET /api/boxes.
func (h *BoxHandler) List(c *gin.Context) {
	boxes, err := h.facade.Boxes(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewBoxResponses(boxes))
}

// Submit handles POST /api/boxes. The draft payload is combined with the
// current selection; validation faults are reported together.
func (h *BoxHandler) Submit(c *gin.Context) {
	var req dto.SubmitBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	box, err := h.facade.SubmitDraft(c.Request.Context(), req.Draft())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingName),
			errors.Is(err, domainErrors.ErrEmptySelection),
			errors.Is(err, domainErrors.ErrUnknownProduct):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewBoxResponse(*box))
}

// ToggleSelection handles POST /api/selection/:productID/toggle.
func (h *BoxHandler) ToggleSelection(c *gin.Context) {
	id, ok := PathID(c, "productID")
	if !ok {
		return
	}

	selected, err := h.facade.ToggleSelection(id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownProduct):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	ids := h.facade.Selection()
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, dto.ToggleSelectionResponse{ProductID: id, Selected: selected, ProductIDs: ids})
}

// ClearSelection handles DELETE /api/selection.
func (h *BoxHandler) ClearSelection(c *gin.Context) {
	h.facade.ClearSelection()
	c.Status(http.StatusNoContent)
}

// Selection handles GET /api/selection.
func (h *BoxHandler) Selection(c *gin.Context) {
	ids := h.facade.Selection()
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, dto.SelectionResponse{ProductIDs: ids, Busy: h.facade.Busy()})
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
)

// SubmitBoxRequest describes the box draft payload.
type SubmitBoxRequest struct {
	Name        string `json:"name"`
	Theme       string `json:"theme"`
	ShipDate    string `json:"shipDate"`
	Description string `json:"description"`
}

// Draft converts the payload to its domain form.
func (r SubmitBoxRequest) Draft() model.Draft {
	return model.Draft{
		Name:        r.Name,
		Theme:       r.Theme,
		ShipDate:    r.ShipDate,
		Description: r.Description,
	}
}

// BoxResponse describes an assembled box.
type BoxResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Theme       string          `json:"theme"`
	ShipDate    string          `json:"shipDate"`
	Description string          `json:"description"`
	ProductIDs  []int64         `json:"productIds"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalRetail decimal.Decimal `json:"totalRetail"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SelectionResponse describes the current product selection session.
type SelectionResponse struct {
	ProductIDs []int64 `json:"productIds"`
	Busy       bool    `json:"busy"`
}

// ToggleSelectionResponse reports the outcome of a selection toggle.
type ToggleSelectionResponse struct {
	ProductID  int64   `json:"productId"`
	Selected   bool    `json:"selected"`
	ProductIDs []int64 `json:"productIds"`
}

// NewBoxResponse maps a domain box to its wire form.
func NewBoxResponse(b model.Box) BoxResponse {
	ids := b.ProductIDs
	if ids == nil {
		ids = []int64{}
	}
	return BoxResponse{
		ID:          b.ID,
		Name:        b.Name,
		Theme:       b.Theme,
		ShipDate:    b.ShipDate,
		Description: b.Description,
		ProductIDs:  ids,
		TotalCost:   b.TotalCost,
		TotalRetail: b.TotalRetail,
		CreatedAt:   b.CreatedAt,
	}
}

// NewBoxResponses maps a box slice.
func NewBoxResponses(boxes []model.Box) []BoxResponse {
	resp := make([]BoxResponse, 0, len(boxes))
	for _, b := range boxes {
		resp = append(resp, NewBoxResponse(b))
	}
	return resp
}

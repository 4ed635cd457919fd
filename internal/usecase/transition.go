package usecase

import (
	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
)

// NextOrderStatus computes the following fulfillment state. The lifecycle
// is strictly forward: pending, in-progress, packed, shipped. Shipped is
// terminal and maps to itself. A status outside the lifecycle is a
// configuration error, never a guessed transition.
func NextOrderStatus(current model.OrderStatus) (model.OrderStatus, error) {
	switch current {
	case model.OrderStatusPending:
		return model.OrderStatusInProgress, nil
	case model.OrderStatusInProgress:
		return model.OrderStatusPacked, nil
	case model.OrderStatusPacked:
		return model.OrderStatusShipped, nil
	case model.OrderStatusShipped:
		return model.OrderStatusShipped, nil
	default:
		return "", domainErrors.ErrUnknownStatus
	}
}

// ToggleCustomerStatus flips a subscription between Active and Paused.
// Cancelled is set by an external process only and maps to itself.
func ToggleCustomerStatus(current model.CustomerStatus) (model.CustomerStatus, error) {
	switch current {
	case model.CustomerStatusActive:
		return model.CustomerStatusPaused, nil
	case model.CustomerStatusPaused:
		return model.CustomerStatusActive, nil
	case model.CustomerStatusCancelled:
		return model.CustomerStatusCancelled, nil
	default:
		return "", domainErrors.ErrUnknownStatus
	}
}

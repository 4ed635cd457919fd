package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
)

func TestNextOrderStatusWalksLifecycleForward(t *testing.T) {
	status := model.OrderStatusPending
	want := []model.OrderStatus{
		model.OrderStatusInProgress,
		model.OrderStatusPacked,
		model.OrderStatusShipped,
		model.OrderStatusShipped,
	}

	for i, expected := range want {
		next, err := NextOrderStatus(status)
		if err != nil {
			t.Fatalf("step %d returned error: %v", i, err)
		}
		if next != expected {
			t.Fatalf("step %d: expected %s, got %s", i, expected, next)
		}
		status = next
	}

	// A further advance from the terminal state stays terminal.
	next, err := NextOrderStatus(status)
	if err != nil {
		t.Fatalf("terminal advance returned error: %v", err)
	}
	if next != model.OrderStatusShipped {
		t.Fatalf("expected shipped to stay shipped, got %s", next)
	}
}

func TestNextOrderStatusRejectsUnknownStatus(t *testing.T) {
	if _, err := NextOrderStatus("misplaced"); !errors.Is(err, domainErrors.ErrUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestToggleCustomerStatus(t *testing.T) {
	cases := []struct {
		name    string
		current model.CustomerStatus
		want    model.CustomerStatus
	}{
		{"active pauses", model.CustomerStatusActive, model.CustomerStatusPaused},
		{"paused resumes", model.CustomerStatusPaused, model.CustomerStatusActive},
		{"cancelled stays cancelled", model.CustomerStatusCancelled, model.CustomerStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := ToggleCustomerStatus(tc.current)
			if err != nil {
				t.Fatalf("toggle returned error: %v", err)
			}
			if next != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next)
			}
		})
	}
}

func TestToggleCustomerStatusRejectsUnknownStatus(t *testing.T) {
	if _, err := ToggleCustomerStatus("Dormant"); !errors.Is(err, domainErrors.ErrUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

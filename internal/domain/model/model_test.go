package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"in progress", OrderStatusInProgress, "in-progress"},
		{"packed", OrderStatusPacked, "packed"},
		{"shipped", OrderStatusShipped, "shipped"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestCustomerStatusValues(t *testing.T) {
	cases := []struct {
		status CustomerStatus
		value  string
	}{
		{CustomerStatusActive, "Active"},
		{CustomerStatusPaused, "Paused"},
		{CustomerStatusCancelled, "Cancelled"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
	}
}

func TestFulfillmentBucketsTotal(t *testing.T) {
	b := FulfillmentBuckets{Pending: 2, InProgress: 3, Packed: 5, Shipped: 7}
	if b.Total() != 17 {
		t.Fatalf("expected total 17, got %d", b.Total())
	}
}

package model

import "time"

// OrderStatus describes fulfillment lifecycle. Transitions only move
// forward: pending, in-progress, packed, shipped.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusPacked     OrderStatus = "packed"
	OrderStatusShipped    OrderStatus = "shipped"
)

// Priority marks orders that jump the fulfillment queue.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Order describes a box order moving through the fulfillment queue.
type Order struct {
	ID        int64
	OrderID   string
	Customer  string
	DueDate   string
	Items     int
	Status    OrderStatus
	Priority  Priority
	CreatedAt time.Time
}

// FulfillmentBuckets holds order counts partitioned by status.
type FulfillmentBuckets struct {
	Pending    int
	InProgress int
	Packed     int
	Shipped    int
}

// Total sums all buckets.
func (b FulfillmentBuckets) Total() int {
	return b.Pending + b.InProgress + b.Packed + b.Shipped
}

package usecase

import "github.com/curatebox/boxops/internal/domain/model"

// CountFulfillmentBuckets partitions orders by status. The bucket counts
// always sum to the input length.
func CountFulfillmentBuckets(orders []model.Order) model.FulfillmentBuckets {
	var b model.FulfillmentBuckets
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusInProgress:
			b.InProgress++
		case model.OrderStatusPacked:
			b.Packed++
		case model.OrderStatusShipped:
			b.Shipped++
		default:
			b.Pending++
		}
	}
	return b
}

// UrgentOrders returns orders that are high priority or still pending,
// truncated to limit. This is a stable filter over the input order, not a
// sort by due date or priority.
func UrgentOrders(orders []model.Order, limit int) []model.Order {
	var out []model.Order
	for _, o := range orders {
		if o.Priority != model.PriorityHigh && o.Status != model.OrderStatusPending {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

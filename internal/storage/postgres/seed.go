package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

type seedCustomer struct {
	name, email, plan, status, nextBilling, totalSpent, joinDate, lastOrder string
}

type seedProduct struct {
	name, category, cost, retail, supplier, sku string
	stock, reorderPoint, maxStock               int
}

type seedOrder struct {
	orderID, customer, dueDate, status, priority string
	items                                        int
}

var seedCustomers = []seedCustomer{
	{"Sarah Johnson", "sarah.j@email.com", "Premium Quarterly", "Active", "2024-03-15", "284.97", "2023-06-12", "Dec 2024 Box"},
	{"Michael Chen", "m.chen@email.com", "Monthly Essentials", "Active", "2024-01-05", "156.88", "2023-11-03", "Dec 2024 Box"},
}

var seedProducts = []seedProduct{
	{"Artisan Coffee Beans", "Beverages", "12.50", "18.99", "Local Roasters Co.", "ACB-001", 156, 50, 500},
	{"Organic Dark Chocolate", "Snacks", "8.25", "14.99", "Bean to Bar Ltd.", "ODC-002", 89, 30, 200},
}

var seedOrders = []seedOrder{
	{"BO-2024-001", "Holiday Box - Premium", "Today", "pending", "high", 8},
	{"BO-2024-002", "Monthly Essentials", "Tomorrow", "in-progress", "normal", 5},
}

// Seed inserts demo rows when the store is empty. Repeated calls are no-ops.
func (s *Storage) Seed(ctx context.Context) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		s.logger.Debug("seed skipped, customers table not empty")
		return nil
	}

	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, c := range seedCustomers {
			_, err := tx.Exec(ctx,
				`INSERT INTO customers (name, email, plan, status, next_billing, total_spent, join_date, last_order)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				c.name, c.email, c.plan, c.status, c.nextBilling, c.totalSpent, c.joinDate, c.lastOrder)
			if err != nil {
				return fmt.Errorf("seed customer %q: %w", c.name, err)
			}
		}

		for _, p := range seedProducts {
			_, err := tx.Exec(ctx,
				`INSERT INTO products (name, category, cost, retail, stock, supplier, sku, reorder_point, max_stock)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				p.name, p.category, p.cost, p.retail, p.stock, p.supplier, p.sku, p.reorderPoint, p.maxStock)
			if err != nil {
				return fmt.Errorf("seed product %q: %w", p.name, err)
			}
		}

		for _, o := range seedOrders {
			_, err := tx.Exec(ctx,
				`INSERT INTO orders (order_id, customer, due_date, items, status, priority)
                 VALUES ($1, $2, $3, $4, $5, $6)`,
				o.orderID, o.customer, o.dueDate, o.items, o.status, o.priority)
			if err != nil {
				return fmt.Errorf("seed order %q: %w", o.orderID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("seeded demo data",
		slog.Int("customers", len(seedCustomers)),
		slog.Int("products", len(seedProducts)),
		slog.Int("orders", len(seedOrders)))
	return nil
}

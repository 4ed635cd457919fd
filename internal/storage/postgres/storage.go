package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type boxRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Boxes() repository.BoxRepository {
	return &boxRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            plan TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'Active',
            next_billing TEXT NOT NULL,
            total_spent NUMERIC(10,2) NOT NULL DEFAULT 0,
            join_date TEXT NOT NULL,
            last_order TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            category TEXT NOT NULL,
            cost NUMERIC(10,2) NOT NULL,
            retail NUMERIC(10,2) NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0,
            supplier TEXT NOT NULL,
            sku TEXT UNIQUE,
            reorder_point INTEGER NOT NULL DEFAULT 30,
            max_stock INTEGER NOT NULL DEFAULT 500,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            customer TEXT NOT NULL,
            due_date TEXT NOT NULL,
            items INTEGER NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            priority TEXT NOT NULL DEFAULT 'normal',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS boxes (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            theme TEXT,
            ship_date TEXT,
            description TEXT,
            product_ids JSONB NOT NULL DEFAULT '[]',
            total_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
            total_retail NUMERIC(10,2) NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, name, email, plan, status, next_billing, total_spent::text,
                          join_date, COALESCE(last_order, ''), created_at
                   FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, email, plan, status, next_billing, total_spent::text,
                          join_date, COALESCE(last_order, ''), created_at
                   FROM customers WHERE id=$1`
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) UpdateStatus(ctx context.Context, id int64, status model.CustomerStatus) error {
	const query = `UPDATE customers SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var (
		c          model.Customer
		totalSpent string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Plan, &c.Status, &c.NextBilling,
		&totalSpent, &c.JoinDate, &c.LastOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if c.TotalSpent, err = decimal.NewFromString(totalSpent); err != nil {
		return nil, fmt.Errorf("parse total spent: %w", err)
	}
	return &c, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, category, cost::text, retail::text, stock, supplier,
                          COALESCE(sku, ''), reorder_point, max_stock, created_at
                   FROM products ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT id, name, category, cost::text, retail::text, stock, supplier,
                          COALESCE(sku, ''), reorder_point, max_stock, created_at
                   FROM products WHERE id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	const query = `UPDATE products SET stock=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, stock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		var (
			p            model.Product
			cost, retail string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &cost, &retail, &p.Stock,
			&p.Supplier, &p.SKU, &p.ReorderPoint, &p.MaxStock, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		if p.Cost, err = decimal.NewFromString(cost); err != nil {
			return nil, fmt.Errorf("parse cost: %w", err)
		}
		if p.Retail, err = decimal.NewFromString(retail); err != nil {
			return nil, fmt.Errorf("parse retail: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, order_id, customer, due_date, items, status, priority, created_at
                   FROM orders ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderID, &o.Customer, &o.DueDate, &o.Items, &o.Status, &o.Priority, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, order_id, customer, due_date, items, status, priority, created_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.OrderID, &o.Customer, &o.DueDate, &o.Items, &o.Status, &o.Priority, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- BoxRepository implementation ---

func (r *boxRepository) List(ctx context.Context) ([]model.Box, error) {
	const query = `SELECT id, name, COALESCE(theme, ''), COALESCE(ship_date, ''),
                          COALESCE(description, ''), product_ids, total_cost::text,
                          total_retail::text, created_at
                   FROM boxes ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Box
	for rows.Next() {
		var (
			b                      model.Box
			productIDs             []byte
			totalCost, totalRetail string
		)
		err := rows.Scan(&b.ID, &b.Name, &b.Theme, &b.ShipDate, &b.Description,
			&productIDs, &totalCost, &totalRetail, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(productIDs, &b.ProductIDs); err != nil {
			return nil, fmt.Errorf("decode product ids: %w", err)
		}
		if b.TotalCost, err = decimal.NewFromString(totalCost); err != nil {
			return nil, fmt.Errorf("parse total cost: %w", err)
		}
		if b.TotalRetail, err = decimal.NewFromString(totalRetail); err != nil {
			return nil, fmt.Errorf("parse total retail: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *boxRepository) Create(ctx context.Context, box model.Box) (*model.Box, error) {
	productIDs, err := json.Marshal(box.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("encode product ids: %w", err)
	}

	const query = `INSERT INTO boxes (id, name, theme, ship_date, description, product_ids, total_cost, total_retail, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.storage.pool.Exec(ctx, query, box.ID, box.Name, box.Theme, box.ShipDate,
		box.Description, productIDs, box.TotalCost.StringFixed(2), box.TotalRetail.StringFixed(2), box.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &box, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

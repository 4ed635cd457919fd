package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/usecase"
)

// InventoryFacade exposes the subset of application functionality required by the monitor.
type InventoryFacade interface {
	LowStockProducts(ctx context.Context) ([]model.Product, error)
}

// StockMonitor polls inventory levels and emits reorder alerts concurrently.
type StockMonitor struct {
	facade       InventoryFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Product
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockMonitor constructs the stock alert worker pool.
func NewStockMonitor(facade InventoryFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *StockMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, batchSize*workers),
	}
}

// Start launches background monitoring.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *StockMonitor) fetchAndDispatch(ctx context.Context) {
	products, err := m.facade.LowStockProducts(ctx)
	if err != nil {
		m.logger.Error("fetch low stock products failed", slog.String("error", err.Error()))
		return
	}
	if len(products) > m.batchSize {
		products = products[:m.batchSize]
	}
	for _, product := range products {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- product:
		}
	}
}

func (m *StockMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-m.jobs:
			if !ok {
				return
			}
			m.alert(product)
		}
	}
}

func (m *StockMonitor) alert(product model.Product) {
	level := slog.LevelWarn
	if product.Stock == 0 {
		level = slog.LevelError
	}
	m.logger.Log(context.Background(), level, "low stock alert",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
		slog.String("supplier", product.Supplier),
		slog.Int("stock", product.Stock),
		slog.Int("reorder_point", product.ReorderPoint),
		slog.Int("reorder_quantity", usecase.ReorderQuantity(product)),
	)
}

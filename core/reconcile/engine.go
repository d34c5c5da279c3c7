package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cache keys of the fetch operations.
const (
	KeyOrders             = "orders"
	KeyShipments          = "shipments"
	keyShippedItemsPrefix = "shipped_items:"
)

// Engine runs order reconciliations against one adapter and owns its cache.
// It is safe for concurrent use.
type Engine struct {
	spec   *Spec
	cache  *Cache
	logger *zap.Logger
}

// NewEngine creates an engine for the given spec.
func NewEngine(spec *Spec, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		spec:   spec,
		cache:  NewCache(spec.CacheTTL),
		logger: logger.With(zap.String("adapter", spec.Adapter.Name())),
	}
}

// Refresh clears every cached table so the next query fetches fresh data.
// It returns the number of cleared entries.
func (e *Engine) Refresh() int {
	n := e.cache.Invalidate()
	e.logger.Info("Cache invalidated", zap.Int("entries", n))
	return n
}

// ReconcileOne builds the shipment status report of the order with the given
// document number. It returns ErrOrderNotFound when no order matches and a
// *FetchError when upstream data could not be loaded.
func (e *Engine) ReconcileOne(ctx context.Context, docNumber string) (*Report, error) {
	orders, shipments, err := e.loadTables(ctx)
	if err != nil {
		return nil, err
	}

	order, err := FindOrder(orders, docNumber)
	if err != nil {
		return nil, err
	}

	var (
		lines    []ShipmentLine
		waybills = make([]string, 0)
	)

	switch e.source() {
	case SourceShippedItems:
		lines, err = e.shippedItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	default:
		matched := SelectShipments(FindShipments(shipments, order.ID), e.spec.Aggregation)
		for _, shipment := range matched {
			waybills = append(waybills, shipment.DocNumber)
			lines = append(lines, shipment.Lines...)
		}
	}

	rows, unexpected := Reconcile(order.Lines, lines, e.spec.KeyMode)
	if len(unexpected) > 0 {
		e.logger.Warn("Shipment lines not present in order",
			zap.String("order", order.DocNumber),
			zap.Int("count", len(unexpected)),
		)
	}

	now := time.Now()
	return &Report{
		DocNumber:   order.DocNumber,
		OrderID:     order.ID,
		Waybills:    waybills,
		Rows:        rows,
		Unexpected:  unexpected,
		Summary:     Summarize(rows),
		Source:      e.source(),
		GeneratedAt: now,
		FetchedAt:   e.fetchedAt(now),
	}, nil
}

// loadTables fetches the orders and, for the waybill source, the shipments concurrently.
func (e *Engine) loadTables(ctx context.Context) ([]Order, []ShipmentRecord, error) {
	var (
		orders    []Order
		shipments []ShipmentRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = Cached(gctx, e.cache, KeyOrders, func(ctx context.Context) ([]Order, error) {
			e.logger.Debug("Fetching orders")
			return e.spec.Adapter.LoadOrders(ctx)
		})
		if err != nil {
			return &FetchError{Op: KeyOrders, Err: err}
		}
		return nil
	})

	if e.source() == SourceWaybills {
		g.Go(func() error {
			var err error
			shipments, err = Cached(gctx, e.cache, KeyShipments, func(ctx context.Context) ([]ShipmentRecord, error) {
				e.logger.Debug("Fetching shipments")
				return e.spec.Adapter.LoadShipments(ctx)
			})
			if err != nil {
				return &FetchError{Op: KeyShipments, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, shipments, nil
}

func (e *Engine) shippedItems(ctx context.Context, orderID string) ([]ShipmentLine, error) {
	key := keyShippedItemsPrefix + orderID
	lines, err := Cached(ctx, e.cache, key, func(ctx context.Context) ([]ShipmentLine, error) {
		e.logger.Debug("Fetching shipped items", zap.String("order_id", orderID))
		return e.spec.Adapter.LoadShippedItems(ctx, orderID)
	})
	if err != nil {
		return nil, &FetchError{Op: key, Err: err}
	}
	return lines, nil
}

// fetchedAt returns when the orders table used by a query was fetched.
// Without caching the data is as fresh as the query itself.
func (e *Engine) fetchedAt(now time.Time) time.Time {
	if t, ok := e.cache.FetchedAt(KeyOrders); ok {
		return t
	}
	return now
}

func (e *Engine) source() Source {
	if e.spec.Source == SourceShippedItems {
		return SourceShippedItems
	}
	return SourceWaybills
}

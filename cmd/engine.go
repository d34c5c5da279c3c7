package cmd

import (
	"fmt"

	"order-status/core/config"
	"order-status/core/holded"
	"order-status/core/reconcile"
	ordersReconcile "order-status/feature/orders/reconcile"

	"go.uber.org/zap"
)

// newEngine wires the invoicing API client, the Holded adapter and the reconciliation engine.
func newEngine(cfg *config.Config, l *zap.Logger) (*reconcile.Engine, error) {
	client, err := holded.NewClient(cfg.Holded)
	if err != nil {
		return nil, fmt.Errorf("failed to create holded client: %w", err)
	}

	adapter := ordersReconcile.NewAdapter(client, l)
	spec := cfg.Reconcile.NewSpec(adapter)

	l.Info("Reconciliation engine ready",
		zap.String("source", string(spec.Source)),
		zap.String("aggregation", string(spec.Aggregation)),
		zap.String("key_mode", string(spec.KeyMode)),
		zap.Duration("cache_ttl", spec.CacheTTL),
	)
	return reconcile.NewEngine(spec, l), nil
}

package reconcile

import (
	"context"

	"order-status/core/holded"
	"order-status/core/reconcile"

	"go.uber.org/zap"
)

// HoldedAdapter implements the reconcile.Adapter interface on top of the invoicing API.
type HoldedAdapter struct {
	client holded.Client
	logger *zap.Logger
}

// NewAdapter creates a new Holded adapter.
func NewAdapter(client holded.Client, logger *zap.Logger) *HoldedAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HoldedAdapter{client: client, logger: logger}
}

// Name returns the unique name of this adapter.
func (a *HoldedAdapter) Name() string {
	return "holded"
}

// LoadOrders fetches and normalizes every sales order.
func (a *HoldedAdapter) LoadOrders(ctx context.Context) ([]reconcile.Order, error) {
	records, err := a.client.ListDocuments(ctx, holded.DocSalesOrder)
	if err != nil {
		return nil, err
	}

	orders, defaulted := NormalizeOrders(records)
	a.reportDefaulted(holded.DocSalesOrder, len(records), defaulted)
	return orders, nil
}

// LoadShipments fetches and normalizes every waybill.
func (a *HoldedAdapter) LoadShipments(ctx context.Context) ([]reconcile.ShipmentRecord, error) {
	records, err := a.client.ListDocuments(ctx, holded.DocWaybill)
	if err != nil {
		return nil, err
	}

	shipments, defaulted := NormalizeWaybills(records)
	a.reportDefaulted(holded.DocWaybill, len(records), defaulted)
	return shipments, nil
}

// LoadShippedItems fetches and normalizes the shipped items report of one order.
func (a *HoldedAdapter) LoadShippedItems(ctx context.Context, orderID string) ([]reconcile.ShipmentLine, error) {
	records, err := a.client.ListShippedItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines, defaulted := NormalizeShippedItems(records)
	a.reportDefaulted("shippeditems", len(records), defaulted)
	return lines, nil
}

func (a *HoldedAdapter) reportDefaulted(docType string, total, defaulted int) {
	if defaulted == 0 {
		return
	}
	a.logger.Warn("Malformed upstream records defaulted",
		zap.String("type", docType),
		zap.Int("records", total),
		zap.Int("defaulted", defaulted),
	)
}

package reconcile

import "context"

// Adapter defines how upstream data is loaded and normalized into the fixed
// order/shipment schema. Implementations must default missing fields instead of
// failing: a record missing numbers gets 0, a record missing lines gets none.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "holded").
	Name() string

	// LoadOrders returns every sales order.
	LoadOrders(ctx context.Context) ([]Order, error)

	// LoadShipments returns every waybill.
	LoadShipments(ctx context.Context) ([]ShipmentRecord, error)

	// LoadShippedItems returns the shipped items report of one order.
	LoadShippedItems(ctx context.Context, orderID string) ([]ShipmentLine, error)
}

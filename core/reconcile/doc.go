// Package reconcile implements the order-to-shipment reconciliation engine.
//
// Given a sales order document number it locates the order, collects the shipped lines
// that belong to it and produces one status row per order line.
//
// # Architecture
//
// 1. Adapter: loads orders, waybills and shipped items reports from the upstream API and
//    normalizes them into Order and ShipmentRecord values, defaulting missing fields.
//
// 2. Matcher: FindOrder (case-insensitive document number) and FindShipments (by the
//    order's internal id), with SelectShipments applying the sum/first policy.
//
// 3. Line reconciler: Reconcile merges order lines with shipment lines by (SKU, name) or
//    SKU alone, computes pending units and classifies each line:
//
//	pending <  0  ->  "Enviado (Extra N)"
//	pending == 0  ->  "Enviado"
//	pending >  0  ->  "Pendiente (Falta N)"
//
// 4. Cache: fetched tables are kept per fetch operation for Spec.CacheTTL, with
//    stampede protection and explicit invalidation (Engine.Refresh).
//
// # Usage Example
//
//	spec := cfg.Reconcile.NewSpec(adapter)
//	engine := reconcile.NewEngine(spec, logger)
//
//	report, err := engine.ReconcileOne(ctx, "SO1001")
//	if errors.Is(err, reconcile.ErrOrderNotFound) {
//	    // warn the user, keep serving
//	}
package reconcile

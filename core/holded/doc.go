// Package holded is a thin read-only client for the Holded invoicing API.
//
// It fetches the two collections the status report is built from (sales orders and
// waybills) plus the optional per-order shipped items report. Responses are returned as
// loosely typed Records; mapping them onto the fixed order/shipment schema is the job of
// the reconcile adapter.
//
// # Errors
//
// Every failure (transport, non-200 status, undecodable body) is returned as an
// *UpstreamError naming the failed operation. Calls are never retried.
//
// # Usage
//
//	client, err := holded.NewClient(cfg.Holded)
//	orders, err := client.ListDocuments(ctx, holded.DocSalesOrder)
package holded

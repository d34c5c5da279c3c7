// Package orders implements the order shipment status feature.
//
// It exposes the reconciliation engine over HTTP:
//
//	GET  /orders/:docNumber                           JSON report, rows annotated with status_family
//	GET  /orders/:docNumber/export?format=csv|xlsx    report download named after the order
//	POST /orders/refresh                              clear cached upstream data
//
// Unknown orders answer 404 with a "warning" body. Upstream failures answer 502.
//
// Subpackages:
//   - reconcile: the Holded adapter (fetch + normalization)
//   - report: CSV, XLSX and terminal formatting
package orders

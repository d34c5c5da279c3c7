// Package reconcile adapts the Holded invoicing API to the reconciliation engine.
//
// HoldedAdapter fetches sales orders, waybills and shipped items reports through
// a holded.Client and normalizes the loosely typed records into the engine's
// types. Normalization never fails: missing or malformed numbers become 0, a
// missing product list becomes empty and a waybill without a "from" object has
// no order link. Records that needed defaults are counted and logged once per fetch.
package reconcile

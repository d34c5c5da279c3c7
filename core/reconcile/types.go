package reconcile

import "time"

// Order is a sales order as normalized from the upstream API.
type Order struct {
	// ID is the upstream internal id shipments link to.
	ID string `json:"id"`

	// DocNumber is the human-facing document number (e.g. "SO1001").
	DocNumber string `json:"doc_number"`

	// Lines is the ordered list of line items. Order is significant for display.
	Lines []OrderLine `json:"lines"`
}

// OrderLine is one product line of an order.
type OrderLine struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	UnitsOrdered int    `json:"units_ordered"`
}

// ShipmentRecord is a waybill (albarán) or shipped items report linked to one order.
type ShipmentRecord struct {
	// ID is the upstream internal id of the shipment document.
	ID string `json:"id"`

	// DocNumber is the shipment document number.
	DocNumber string `json:"doc_number"`

	// OrderID is the internal id of the order this shipment references.
	// Empty when the upstream record carried no link.
	OrderID string `json:"order_id"`

	// Lines lists what was shipped.
	Lines []ShipmentLine `json:"lines"`
}

// ShipmentLine is one product line of a shipment.
type ShipmentLine struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitsSent int    `json:"units_sent"`

	// UnitsOrdered is the ordered total some sources echo back. Informational only.
	UnitsOrdered int `json:"units_ordered,omitempty"`

	// Pending is the remaining count when the source supplies it authoritatively.
	Pending *int `json:"pending,omitempty"`
}

// Row is one line of the shipment status report.
type Row struct {
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	UnitsOrdered int    `json:"units_ordered"`
	UnitsSent    int    `json:"units_sent"`

	// UnitsPending is ordered minus sent (negative when over-shipped), or the
	// authoritative value supplied by the source.
	UnitsPending int `json:"units_pending"`

	// UnitsShipped is the "sent/ordered" display string.
	UnitsShipped string `json:"units_shipped"`

	// Status is "Enviado", "Enviado (Extra N)" or "Pendiente (Falta N)".
	Status string `json:"status"`
}

// Report is the reconciliation output for one order.
type Report struct {
	// DocNumber is the matched order's document number as stored upstream.
	DocNumber string `json:"doc_number"`

	// OrderID is the matched order's internal id.
	OrderID string `json:"order_id"`

	// Waybills lists the shipment document numbers that contributed to the rows.
	Waybills []string `json:"waybills"`

	// Rows holds one row per order line, in order-line sequence.
	Rows []Row `json:"rows"`

	// Unexpected holds shipment lines whose key matches no order line.
	// They are not part of Rows.
	Unexpected []ShipmentLine `json:"unexpected"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Source is the strategy that produced the shipment lines.
	Source Source `json:"source"`

	// GeneratedAt is when the report was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// FetchedAt is when the upstream orders behind the report were fetched.
	FetchedAt time.Time `json:"fetched_at"`
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// Lines is the number of order lines.
	Lines int `json:"lines"`

	// Shipped counts lines shipped exactly as ordered.
	Shipped int `json:"shipped"`

	// Extra counts over-shipped lines.
	Extra int `json:"extra"`

	// Pending counts under-shipped lines.
	Pending int `json:"pending"`

	// UnitsOrdered is the total of ordered units.
	UnitsOrdered int `json:"units_ordered"`

	// UnitsSent is the total of sent units across order lines.
	UnitsSent int `json:"units_sent"`
}

// Source selects where shipment lines come from.
type Source string

const (
	// SourceWaybills reads the products embedded in waybills that reference the order.
	SourceWaybills Source = "waybills"
	// SourceShippedItems reads the order's dedicated shipped items report.
	SourceShippedItems Source = "shipped_items"
)

// Aggregation selects how multiple waybills of one order are combined.
type Aggregation string

const (
	// AggregateSum adds up units across every waybill of the order.
	AggregateSum Aggregation = "sum"
	// AggregateFirst uses only the first waybill of the order.
	AggregateFirst Aggregation = "first"
)

// KeyMode selects how shipment lines are matched to order lines.
type KeyMode string

const (
	// KeySKUName matches on SKU and product name, both exact.
	KeySKUName KeyMode = "sku_name"
	// KeySKU matches on SKU only.
	KeySKU KeyMode = "sku"
)

// Spec defines the configuration for a reconciliation engine.
// It bundles the adapter, cache settings, and the matching strategy.
type Spec struct {
	// Adapter loads and normalizes upstream data.
	Adapter Adapter

	// CacheTTL is the time-to-live for fetched tables.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// Source selects where shipment lines come from.
	Source Source

	// Aggregation selects how multiple waybills are combined.
	Aggregation Aggregation

	// KeyMode selects the line matching key.
	KeyMode KeyMode
}

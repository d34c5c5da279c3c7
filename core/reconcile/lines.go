package reconcile

import "fmt"

// Status labels.
const (
	StatusShipped = "Enviado"
	StatusPending = "Pendiente"
)

// Classify returns the status label for a pending count (ordered minus sent).
func Classify(pending int) string {
	switch {
	case pending < 0:
		return fmt.Sprintf("%s (Extra %d)", StatusShipped, -pending)
	case pending == 0:
		return StatusShipped
	default:
		return fmt.Sprintf("%s (Falta %d)", StatusPending, pending)
	}
}

// NewRow builds a report row, deriving pending, display and status from the units.
func NewRow(sku, name string, ordered, sent int) Row {
	return newRow(sku, name, ordered, sent, ordered-sent)
}

func newRow(sku, name string, ordered, sent, pending int) Row {
	return Row{
		SKU:          sku,
		ProductName:  name,
		UnitsOrdered: ordered,
		UnitsSent:    sent,
		UnitsPending: pending,
		UnitsShipped: fmt.Sprintf("%d/%d", sent, ordered),
		Status:       Classify(pending),
	}
}

type lineKey struct {
	sku  string
	name string
}

func keyFor(mode KeyMode, sku, name string) lineKey {
	if mode == KeySKU {
		return lineKey{sku: sku}
	}
	return lineKey{sku: sku, name: name}
}

type tally struct {
	sent    int
	pending int
	// authoritative stays true while every contributing line supplied Pending
	authoritative bool
}

// Reconcile merges order lines with shipment lines.
//
// It returns one row per order line in input order, plus the shipment lines that match
// no order line. Shipment lines sharing a key are summed. When every shipment line of a
// key carries an authoritative Pending, their sum replaces the recomputed pending.
func Reconcile(orderLines []OrderLine, shipmentLines []ShipmentLine, mode KeyMode) ([]Row, []ShipmentLine) {
	index := make(map[lineKey]*tally, len(shipmentLines))
	for _, line := range shipmentLines {
		key := keyFor(mode, line.SKU, line.Name)
		t, ok := index[key]
		if !ok {
			t = &tally{authoritative: true}
			index[key] = t
		}
		t.sent += line.UnitsSent
		if line.Pending != nil {
			t.pending += *line.Pending
		} else {
			t.authoritative = false
		}
	}

	wanted := make(map[lineKey]struct{}, len(orderLines))
	rows := make([]Row, 0, len(orderLines))
	for _, line := range orderLines {
		key := keyFor(mode, line.SKU, line.Name)
		wanted[key] = struct{}{}

		t, ok := index[key]
		switch {
		case !ok:
			rows = append(rows, NewRow(line.SKU, line.Name, line.UnitsOrdered, 0))
		case t.authoritative:
			rows = append(rows, newRow(line.SKU, line.Name, line.UnitsOrdered, t.sent, t.pending))
		default:
			rows = append(rows, NewRow(line.SKU, line.Name, line.UnitsOrdered, t.sent))
		}
	}

	unexpected := make([]ShipmentLine, 0)
	for _, line := range shipmentLines {
		if _, ok := wanted[keyFor(mode, line.SKU, line.Name)]; !ok {
			unexpected = append(unexpected, line)
		}
	}

	return rows, unexpected
}

// Summarize computes aggregate counts over rows.
func Summarize(rows []Row) Summary {
	s := Summary{Lines: len(rows)}
	for _, row := range rows {
		s.UnitsOrdered += row.UnitsOrdered
		s.UnitsSent += row.UnitsSent
		switch {
		case row.UnitsPending < 0:
			s.Extra++
		case row.UnitsPending == 0:
			s.Shipped++
		default:
			s.Pending++
		}
	}
	return s
}

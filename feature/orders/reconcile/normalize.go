package reconcile

import (
	"encoding/json"
	"strings"

	"order-status/core/holded"
	"order-status/core/reconcile"
	"order-status/core/utils"
)

// Upstream field names.
const (
	fieldID        = "id"
	fieldDocNumber = "docNumber"
	fieldProducts  = "products"
	fieldFrom      = "from"
	fieldSKU       = "sku"
	fieldName      = "name"
	fieldUnits     = "units"
	fieldSent      = "sent"
	fieldTotal     = "total"
	fieldPending   = "pending"
)

// NormalizeOrders converts sales order records. It returns the orders and how
// many records needed at least one defaulted field.
func NormalizeOrders(records []holded.Record) ([]reconcile.Order, int) {
	orders := make([]reconcile.Order, 0, len(records))
	defaulted := 0
	for _, rec := range records {
		order, clean := NormalizeOrder(rec)
		if !clean {
			defaulted++
		}
		orders = append(orders, order)
	}
	return orders, defaulted
}

// NormalizeOrder converts one sales order record.
// The second result is false when any field had to be defaulted.
func NormalizeOrder(rec holded.Record) (reconcile.Order, bool) {
	products, clean := productList(rec[fieldProducts])

	lines := make([]reconcile.OrderLine, 0, len(products))
	for _, p := range products {
		n, ok := units(p[fieldUnits])
		clean = clean && ok
		lines = append(lines, reconcile.OrderLine{
			SKU:          utils.ToString(p[fieldSKU]),
			Name:         utils.ToString(p[fieldName]),
			UnitsOrdered: n,
		})
	}

	return reconcile.Order{
		ID:        utils.ToString(rec[fieldID]),
		DocNumber: strings.TrimSpace(utils.ToString(rec[fieldDocNumber])),
		Lines:     lines,
	}, clean
}

// NormalizeWaybills converts waybill records into shipment records linked through "from.id".
func NormalizeWaybills(records []holded.Record) ([]reconcile.ShipmentRecord, int) {
	shipments := make([]reconcile.ShipmentRecord, 0, len(records))
	defaulted := 0
	for _, rec := range records {
		shipment, clean := NormalizeWaybill(rec)
		if !clean {
			defaulted++
		}
		shipments = append(shipments, shipment)
	}
	return shipments, defaulted
}

// NormalizeWaybill converts one waybill record.
func NormalizeWaybill(rec holded.Record) (reconcile.ShipmentRecord, bool) {
	products, clean := productList(rec[fieldProducts])

	lines := make([]reconcile.ShipmentLine, 0, len(products))
	for _, p := range products {
		n, ok := units(p[fieldUnits])
		clean = clean && ok
		lines = append(lines, reconcile.ShipmentLine{
			SKU:       utils.ToString(p[fieldSKU]),
			Name:      utils.ToString(p[fieldName]),
			UnitsSent: n,
		})
	}

	orderID, ok := linkedOrder(rec[fieldFrom])
	return reconcile.ShipmentRecord{
		ID:        utils.ToString(rec[fieldID]),
		DocNumber: strings.TrimSpace(utils.ToString(rec[fieldDocNumber])),
		OrderID:   orderID,
		Lines:     lines,
	}, clean && ok
}

// NormalizeShippedItems converts the shipped items report of one order.
// A "pending" field, when numeric, is kept as the authoritative remaining count.
func NormalizeShippedItems(records []holded.Record) ([]reconcile.ShipmentLine, int) {
	lines := make([]reconcile.ShipmentLine, 0, len(records))
	defaulted := 0
	for _, rec := range records {
		sent, clean := units(rec[fieldSent])
		total, ok := units(rec[fieldTotal])
		if _, present := rec[fieldTotal]; present {
			clean = clean && ok
		}

		line := reconcile.ShipmentLine{
			SKU:          utils.ToString(rec[fieldSKU]),
			Name:         utils.ToString(rec[fieldName]),
			UnitsSent:    sent,
			UnitsOrdered: total,
		}
		if raw, present := rec[fieldPending]; present && raw != nil {
			if utils.IsNumeric(raw) {
				pending := utils.ToInt(raw)
				line.Pending = &pending
			} else {
				clean = false
			}
		}

		if !clean {
			defaulted++
		}
		lines = append(lines, line)
	}
	return lines, defaulted
}

// units coerces a unit count to a non-negative integer.
// The second result is false when the value was missing, non-numeric or negative.
func units(val any) (int, bool) {
	if !utils.IsNumeric(val) {
		return 0, false
	}
	return utils.ToNonNegativeInt(val), utils.ToInt(val) >= 0
}

// productList extracts the product objects of a document. Products sometimes
// arrive serialized as a string, either JSON or a Python style literal.
func productList(val any) ([]map[string]any, bool) {
	var items []any
	clean := true

	switch v := val.(type) {
	case nil:
		return []map[string]any{}, true
	case []any:
		items = v
	case []map[string]any:
		return v, true
	case string:
		parsed, ok := parseProductString(v)
		if !ok {
			return []map[string]any{}, false
		}
		items = parsed
	default:
		return []map[string]any{}, false
	}

	products := make([]map[string]any, 0, len(items))
	for _, item := range items {
		p, ok := item.(map[string]any)
		if !ok {
			clean = false
			continue
		}
		products = append(products, p)
	}
	return products, clean
}

func parseProductString(s string) ([]any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}, true
	}

	var items []any
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, true
	}
	converted, ok := literalToJSON(s)
	if !ok {
		return nil, false
	}
	if err := json.Unmarshal([]byte(converted), &items); err != nil {
		return nil, false
	}
	return items, true
}

// linkedOrder reads the order id from a waybill's "from" object.
// A missing link is not a defect; a non-object value is.
func linkedOrder(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case map[string]any:
		return utils.ToString(v[fieldID]), true
	default:
		return "", false
	}
}

package reconcile

import (
	"fmt"
	"strings"
)

// FindOrder returns the order whose document number equals docNumber, ignoring case.
// Surrounding whitespace in the query is ignored. No match yields ErrOrderNotFound.
func FindOrder(orders []Order, docNumber string) (Order, error) {
	want := strings.TrimSpace(docNumber)
	if want == "" {
		return Order{}, fmt.Errorf("%w: empty document number", ErrOrderNotFound)
	}

	for _, order := range orders {
		if strings.EqualFold(order.DocNumber, want) {
			return order, nil
		}
	}
	return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, want)
}

// FindShipments returns every shipment referencing orderID, in upstream order.
func FindShipments(shipments []ShipmentRecord, orderID string) []ShipmentRecord {
	matched := make([]ShipmentRecord, 0)
	if orderID == "" {
		return matched
	}

	for _, shipment := range shipments {
		if shipment.OrderID == orderID {
			matched = append(matched, shipment)
		}
	}
	return matched
}

// SelectShipments applies the aggregation policy to an order's shipments.
func SelectShipments(shipments []ShipmentRecord, aggregation Aggregation) []ShipmentRecord {
	if aggregation == AggregateFirst && len(shipments) > 1 {
		return shipments[:1]
	}
	return shipments
}

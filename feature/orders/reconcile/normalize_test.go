package reconcile

import (
	"testing"

	"order-status/core/holded"
	"order-status/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrder(t *testing.T) {
	rec := holded.Record{
		"id":        "64f0c1",
		"docNumber": " SO1001 ",
		"products": []any{
			map[string]any{"sku": "A1", "name": "Widget", "units": float64(10)},
			map[string]any{"sku": float64(1002), "name": "Gadget", "units": "5"},
		},
	}

	order, clean := NormalizeOrder(rec)

	assert.True(t, clean)
	assert.Equal(t, "64f0c1", order.ID)
	assert.Equal(t, "SO1001", order.DocNumber)
	assert.Equal(t, []reconcile.OrderLine{
		{SKU: "A1", Name: "Widget", UnitsOrdered: 10},
		{SKU: "1002", Name: "Gadget", UnitsOrdered: 5},
	}, order.Lines)
}

func TestNormalizeOrder_ProductsAsString(t *testing.T) {
	tests := []struct {
		name     string
		products string
	}{
		{"JSON", `[{"sku": "A1", "name": "Widget", "units": 2}]`},
		{"Literal", `[{'sku': 'A1', 'name': 'Widget', 'units': 2, 'tax': None}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, clean := NormalizeOrder(holded.Record{"id": "o1", "docNumber": "SO1", "products": tt.products})
			assert.True(t, clean)
			require.Len(t, order.Lines, 1)
			assert.Equal(t, reconcile.OrderLine{SKU: "A1", Name: "Widget", UnitsOrdered: 2}, order.Lines[0])
		})
	}
}

func TestNormalizeOrder_LiteralKeepsNames(t *testing.T) {
	tests := []struct {
		name     string
		products string
		want     reconcile.OrderLine
	}{
		{
			name:     "ConstantsInsideName",
			products: `[{'sku': 'A1', 'name': 'True Blue Nonesuch', 'units': 2, 'discount': None, 'gift': False}]`,
			want:     reconcile.OrderLine{SKU: "A1", Name: "True Blue Nonesuch", UnitsOrdered: 2},
		},
		{
			name:     "ApostropheInDoubleQuotes",
			products: `[{'sku': 'K9', 'name': "Kid's Toy", 'units': 1}]`,
			want:     reconcile.OrderLine{SKU: "K9", Name: "Kid's Toy", UnitsOrdered: 1},
		},
		{
			name:     "EscapedApostrophe",
			products: `[{'sku': 'K9', 'name': 'Kid\'s Toy', 'units': 1}]`,
			want:     reconcile.OrderLine{SKU: "K9", Name: "Kid's Toy", UnitsOrdered: 1},
		},
		{
			name:     "DoubleQuoteInSingleQuotes",
			products: `[{'sku': 'S1', 'name': 'Screen 27" Pro', 'units': 3}]`,
			want:     reconcile.OrderLine{SKU: "S1", Name: `Screen 27" Pro`, UnitsOrdered: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, clean := NormalizeOrder(holded.Record{"id": "o1", "docNumber": "SO1", "products": tt.products})
			assert.True(t, clean)
			require.Len(t, order.Lines, 1)
			assert.Equal(t, tt.want, order.Lines[0])
		})
	}
}

func TestNormalizeOrder_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		rec       holded.Record
		wantLines []reconcile.OrderLine
		wantClean bool
	}{
		{
			name:      "MissingProducts",
			rec:       holded.Record{"id": "o1", "docNumber": "SO1"},
			wantLines: []reconcile.OrderLine{},
			wantClean: true,
		},
		{
			name:      "ProductsNotAList",
			rec:       holded.Record{"id": "o1", "docNumber": "SO1", "products": float64(3)},
			wantLines: []reconcile.OrderLine{},
			wantClean: false,
		},
		{
			name:      "UnparsableString",
			rec:       holded.Record{"id": "o1", "docNumber": "SO1", "products": "not a list"},
			wantLines: []reconcile.OrderLine{},
			wantClean: false,
		},
		{
			name: "MissingAndNegativeUnits",
			rec: holded.Record{"id": "o1", "docNumber": "SO1", "products": []any{
				map[string]any{"sku": "A1", "name": "Widget"},
				map[string]any{"sku": "B2", "name": "Gadget", "units": float64(-4)},
			}},
			wantLines: []reconcile.OrderLine{
				{SKU: "A1", Name: "Widget", UnitsOrdered: 0},
				{SKU: "B2", Name: "Gadget", UnitsOrdered: 0},
			},
			wantClean: false,
		},
		{
			name: "NonObjectProductSkipped",
			rec: holded.Record{"id": "o1", "docNumber": "SO1", "products": []any{
				"garbage",
				map[string]any{"sku": "A1", "name": "Widget", "units": float64(1)},
			}},
			wantLines: []reconcile.OrderLine{{SKU: "A1", Name: "Widget", UnitsOrdered: 1}},
			wantClean: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, clean := NormalizeOrder(tt.rec)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantLines, order.Lines)
		})
	}
}

func TestNormalizeWaybills(t *testing.T) {
	records := []holded.Record{
		{
			"id":        "w1",
			"docNumber": "ALB-1",
			"from":      map[string]any{"id": "o1", "docType": "salesorder"},
			"products":  []any{map[string]any{"sku": "A1", "name": "Widget", "units": float64(10)}},
		},
		{"id": "w2", "docNumber": "ALB-2"},
		{"id": "w3", "docNumber": "ALB-3", "from": "o1"},
	}

	shipments, defaulted := NormalizeWaybills(records)

	require.Len(t, shipments, 3)
	assert.Equal(t, 1, defaulted)
	assert.Equal(t, "o1", shipments[0].OrderID)
	assert.Equal(t, []reconcile.ShipmentLine{{SKU: "A1", Name: "Widget", UnitsSent: 10}}, shipments[0].Lines)
	assert.Empty(t, shipments[1].OrderID)
	assert.Empty(t, shipments[1].Lines)
	assert.Empty(t, shipments[2].OrderID, "a non-object from carries no link")
}

func TestNormalizeShippedItems(t *testing.T) {
	records := []holded.Record{
		{"sku": "A1", "name": "Widget", "sent": float64(12), "total": float64(10), "pending": float64(-2)},
		{"sku": "B2", "name": "Gadget", "sent": float64(3), "total": float64(5)},
		{"sku": "C3", "name": "Gizmo", "sent": "n/a", "pending": "lots"},
	}

	lines, defaulted := NormalizeShippedItems(records)

	require.Len(t, lines, 3)
	assert.Equal(t, 1, defaulted)

	require.NotNil(t, lines[0].Pending)
	assert.Equal(t, -2, *lines[0].Pending)
	assert.Equal(t, 12, lines[0].UnitsSent)
	assert.Equal(t, 10, lines[0].UnitsOrdered)

	assert.Nil(t, lines[1].Pending)
	assert.Equal(t, 3, lines[1].UnitsSent)

	assert.Equal(t, 0, lines[2].UnitsSent)
	assert.Nil(t, lines[2].Pending)
}

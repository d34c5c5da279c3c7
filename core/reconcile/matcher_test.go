package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrder(t *testing.T) {
	orders := []Order{
		{ID: "o1", DocNumber: "SO1001"},
		{ID: "o2", DocNumber: "Wix250212"},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{"Exact", "SO1001", "o1"},
		{"LowerCase", "so1001", "o1"},
		{"MixedCase", "wIX250212", "o2"},
		{"Whitespace", "  SO1001 ", "o1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := FindOrder(orders, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, order.ID)
		})
	}
}

func TestFindOrder_NotFound(t *testing.T) {
	orders := []Order{{ID: "o1", DocNumber: "SO1001"}}

	for _, query := range []string{"SO100", "SO10011", "", "   "} {
		_, err := FindOrder(orders, query)
		assert.True(t, errors.Is(err, ErrOrderNotFound), "query %q", query)
	}
}

func TestFindShipments(t *testing.T) {
	shipments := []ShipmentRecord{
		{ID: "w1", DocNumber: "ALB1", OrderID: "o1"},
		{ID: "w2", DocNumber: "ALB2", OrderID: "o2"},
		{ID: "w3", DocNumber: "ALB3", OrderID: "o1"},
		{ID: "w4", DocNumber: "ALB4"},
	}

	t.Run("Many", func(t *testing.T) {
		matched := FindShipments(shipments, "o1")
		require.Len(t, matched, 2)
		assert.Equal(t, "ALB1", matched[0].DocNumber)
		assert.Equal(t, "ALB3", matched[1].DocNumber)
	})

	t.Run("None", func(t *testing.T) {
		matched := FindShipments(shipments, "o9")
		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("EmptyOrderIDNeverMatchesUnlinked", func(t *testing.T) {
		assert.Empty(t, FindShipments(shipments, ""))
	})
}

func TestSelectShipments(t *testing.T) {
	shipments := []ShipmentRecord{{ID: "w1"}, {ID: "w2"}}

	assert.Len(t, SelectShipments(shipments, AggregateSum), 2)

	first := SelectShipments(shipments, AggregateFirst)
	require.Len(t, first, 1)
	assert.Equal(t, "w1", first[0].ID)

	assert.Empty(t, SelectShipments(nil, AggregateFirst))
}

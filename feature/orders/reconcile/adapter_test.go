package reconcile

import (
	"context"
	"errors"
	"testing"

	"order-status/core/holded"
	"order-status/core/holded/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHoldedAdapter_LoadOrders(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListDocuments", mock.Anything, holded.DocSalesOrder).Return([]holded.Record{
		{"id": "o1", "docNumber": "SO1001", "products": []any{
			map[string]any{"sku": "A1", "name": "Widget", "units": float64(10)},
		}},
	}, nil)

	adapter := NewAdapter(client, zap.NewNop())
	orders, err := adapter.LoadOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "SO1001", orders[0].DocNumber)
	assert.Equal(t, 10, orders[0].Lines[0].UnitsOrdered)
	client.AssertExpectations(t)
}

func TestHoldedAdapter_LoadShipments_LogsDefaulted(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	client := new(mocks.Client)
	client.On("ListDocuments", mock.Anything, holded.DocWaybill).Return([]holded.Record{
		{"id": "w1", "docNumber": "ALB-1", "from": map[string]any{"id": "o1"}, "products": []any{
			map[string]any{"sku": "A1", "name": "Widget", "units": "many"},
		}},
		{"id": "w2", "docNumber": "ALB-2", "from": map[string]any{"id": "o2"}},
	}, nil)

	adapter := NewAdapter(client, zap.New(core))
	shipments, err := adapter.LoadShipments(context.Background())

	require.NoError(t, err)
	assert.Len(t, shipments, 2)

	entries := logs.FilterMessage("Malformed upstream records defaulted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["defaulted"])
	assert.Equal(t, holded.DocWaybill, entries[0].ContextMap()["type"])
}

func TestHoldedAdapter_LoadShippedItems(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListShippedItems", mock.Anything, "o1").Return([]holded.Record{
		{"sku": "A1", "name": "Widget", "sent": float64(10), "total": float64(10), "pending": float64(0)},
	}, nil)

	adapter := NewAdapter(client, nil)
	lines, err := adapter.LoadShippedItems(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Pending)
	assert.Equal(t, 0, *lines[0].Pending)
}

func TestHoldedAdapter_PropagatesErrors(t *testing.T) {
	upstream := &holded.UpstreamError{Op: "list salesorder", StatusCode: 401, Err: errors.New("unauthorized")}

	client := new(mocks.Client)
	client.On("ListDocuments", mock.Anything, holded.DocSalesOrder).Return(nil, upstream)

	adapter := NewAdapter(client, zap.NewNop())
	_, err := adapter.LoadOrders(context.Background())

	var target *holded.UpstreamError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 401, target.StatusCode)
	assert.Equal(t, "holded", adapter.Name())
}

package mocks

import (
	"context"

	"order-status/core/holded"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of holded.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListDocuments(ctx context.Context, docType string) ([]holded.Record, error) {
	args := m.Called(ctx, docType)
	if records, ok := args.Get(0).([]holded.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListShippedItems(ctx context.Context, orderID string) ([]holded.Record, error) {
	args := m.Called(ctx, orderID)
	if records, ok := args.Get(0).([]holded.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

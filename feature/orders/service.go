package orders

import (
	"bytes"
	"context"

	"order-status/core/reconcile"
	"order-status/feature/orders/report"

	"go.uber.org/zap"
)

// Service handles order status operations.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new order status service.
func NewService(engine *reconcile.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine: engine,
		logger: logger,
	}
}

// Export is a rendered report file.
type Export struct {
	FileName    string
	ContentType string
	Body        []byte
}

// GetStatus returns the shipment status report of one order.
func (s *Service) GetStatus(ctx context.Context, docNumber string) (*reconcile.Report, error) {
	return s.engine.ReconcileOne(ctx, docNumber)
}

// Export renders the shipment status report of one order in the given format.
func (s *Service) Export(ctx context.Context, docNumber string, format report.Format, opts report.Options) (*Export, error) {
	r, err := s.engine.ReconcileOne(ctx, docNumber)
	if err != nil {
		return nil, err
	}
	return s.ExportReport(r, format, opts)
}

// ExportReport renders an already computed report in the given format.
func (s *Service) ExportReport(r *reconcile.Report, format report.Format, opts report.Options) (*Export, error) {
	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case report.FormatXLSX:
		err = report.WriteXLSX(&buf, r.DocNumber, r.Rows, opts)
	default:
		format = report.FormatCSV
		err = report.WriteCSV(&buf, r.Rows, opts)
	}
	if err != nil {
		return nil, err
	}

	return &Export{
		FileName:    report.FileName(r.DocNumber, format),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// Refresh drops every cached upstream table and returns how many were dropped.
func (s *Service) Refresh() int {
	return s.engine.Refresh()
}

package orders

import (
	"errors"
	"fmt"
	"time"

	"order-status/core/logger"
	"order-status/core/reconcile"
	"order-status/feature/orders/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for order status.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StatusResponse is the JSON body of an order status report.
type StatusResponse struct {
	DocNumber   string                   `json:"doc_number"`
	OrderID     string                   `json:"order_id"`
	Waybills    []string                 `json:"waybills"`
	Rows        []report.AnnotatedRow    `json:"rows"`
	Unexpected  []reconcile.ShipmentLine `json:"unexpected"`
	Summary     reconcile.Summary        `json:"summary"`
	Source      reconcile.Source         `json:"source"`
	GeneratedAt time.Time                `json:"generated_at"`
	FetchedAt   time.Time                `json:"fetched_at"`
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/:docNumber", h.HandleGetStatus)
	group.Get("/:docNumber/export", h.HandleExport)
}

// HandleGetStatus returns the shipment status report of an order.
// @Summary Get Order Status
// @Description Reconcile the order's lines against shipped quantities.
// @Tags orders
// @Produce json
// @Param docNumber path string true "Order document number (e.g. 'SO1001')"
// @Success 200 {object} StatusResponse "Status report"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /orders/{docNumber} [get]
func (h *Handler) HandleGetStatus(c *fiber.Ctx) error {
	docNumber := c.Params("docNumber")
	l := logger.WithRayID(h.service.logger, c)

	r, err := h.service.GetStatus(c.Context(), docNumber)
	if err != nil {
		return h.fail(c, l, docNumber, err)
	}

	return c.JSON(StatusResponse{
		DocNumber:   r.DocNumber,
		OrderID:     r.OrderID,
		Waybills:    r.Waybills,
		Rows:        report.Annotate(r.Rows),
		Unexpected:  r.Unexpected,
		Summary:     r.Summary,
		Source:      r.Source,
		GeneratedAt: r.GeneratedAt,
		FetchedAt:   r.FetchedAt,
	})
}

// HandleExport downloads the shipment status report of an order.
// @Summary Export Order Status
// @Description Download the status report as CSV (UTF-8 with BOM) or XLSX.
// @Tags orders
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param docNumber path string true "Order document number"
// @Param format query string false "csv (default) or xlsx"
// @Param pending query bool false "Include the Units Pending column"
// @Success 200 {file} file "Report file"
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /orders/{docNumber}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	docNumber := c.Params("docNumber")
	l := logger.WithRayID(h.service.logger, c)

	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	opts := report.Options{IncludePending: c.QueryBool("pending", false)}

	export, err := h.service.Export(c.Context(), docNumber, format, opts)
	if err != nil {
		return h.fail(c, l, docNumber, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	return c.Send(export.Body)
}

// HandleRefresh clears cached upstream data.
// @Summary Refresh Data
// @Description Drop cached orders and shipments so the next query fetches fresh data.
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]int "Cleared entries"
// @Router /orders/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	cleared := h.service.Refresh()
	logger.WithRayID(h.service.logger, c).Info("Data refresh requested", zap.Int("cleared", cleared))
	return c.JSON(fiber.Map{
		"cleared": cleared,
	})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, docNumber string, err error) error {
	if errors.Is(err, reconcile.ErrOrderNotFound) {
		l.Warn("Order not found", zap.String("doc_number", docNumber))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"warning": "Order docNumber not found. Please check your input.",
		})
	}

	var fetchErr *reconcile.FetchError
	if errors.As(err, &fetchErr) {
		l.Error("Upstream fetch failed", zap.String("doc_number", docNumber), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Error("Order status failed", zap.String("doc_number", docNumber), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

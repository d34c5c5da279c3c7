package orders_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"order-status/core/holded"
	"order-status/core/holded/mocks"
	"order-status/core/reconcile"
	"order-status/feature/orders"
	ordersreconcile "order-status/feature/orders/reconcile"
	"order-status/feature/orders/report"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func salesOrders() []holded.Record {
	return []holded.Record{
		{"id": "o1", "docNumber": "SO1001", "products": []any{
			map[string]any{"sku": "A1", "name": "Widget", "units": float64(10)},
			map[string]any{"sku": "B2", "name": "Gadget", "units": float64(5)},
		}},
	}
}

func waybills() []holded.Record {
	return []holded.Record{
		{"id": "w1", "docNumber": "ALB-1", "from": map[string]any{"id": "o1"}, "products": []any{
			map[string]any{"sku": "A1", "name": "Widget", "units": float64(10)},
			map[string]any{"sku": "B2", "name": "Gadget", "units": float64(3)},
		}},
	}
}

func setupApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()

	adapter := ordersreconcile.NewAdapter(client, zap.NewNop())
	spec := &reconcile.Spec{
		Adapter:     adapter,
		CacheTTL:    time.Hour,
		Source:      reconcile.SourceWaybills,
		Aggregation: reconcile.AggregateSum,
		KeyMode:     reconcile.KeySKUName,
	}
	engine := reconcile.NewEngine(spec, zap.NewNop())

	app := fiber.New()
	require.NoError(t, orders.NewFeature(engine, zap.NewNop()).Load(app))
	return app
}

func newClient() *mocks.Client {
	client := new(mocks.Client)
	client.On("ListDocuments", mock.Anything, holded.DocSalesOrder).Return(salesOrders(), nil)
	client.On("ListDocuments", mock.Anything, holded.DocWaybill).Return(waybills(), nil)
	return client
}

func TestHandleGetStatus(t *testing.T) {
	client := newClient()
	app := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/so1001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body orders.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "SO1001", body.DocNumber)
	assert.Equal(t, []string{"ALB-1"}, body.Waybills)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "Enviado", body.Rows[0].Status)
	assert.Equal(t, report.FamilyShipped, body.Rows[0].Family)
	assert.Equal(t, "3/5", body.Rows[1].UnitsShipped)
	assert.Equal(t, "Pendiente (Falta 2)", body.Rows[1].Status)
	assert.Equal(t, report.FamilyPending, body.Rows[1].Family)
	assert.Equal(t, 1, body.Summary.Pending)
	client.AssertExpectations(t)
}

func TestHandleGetStatus_NotFound(t *testing.T) {
	app := setupApp(t, newClient())

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["warning"], "not found")
}

func TestHandleGetStatus_UpstreamFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListDocuments", mock.Anything, holded.DocSalesOrder).
		Return(nil, &holded.UpstreamError{Op: "list salesorder", StatusCode: 500, Err: errors.New("boom")})
	client.On("ListDocuments", mock.Anything, holded.DocWaybill).Return(waybills(), nil)
	app := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO1001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "status 500")
}

func TestHandleExport_CSV(t *testing.T) {
	app := setupApp(t, newClient())

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO1001/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, report.ContentTypeCSV, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "SO1001_status.csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := report.ParseCSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pendiente (Falta 2)", rows[1].Status)
}

func TestHandleExport_XLSX(t *testing.T) {
	app := setupApp(t, newClient())

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO1001/export?format=xlsx&pending=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, report.ContentTypeXLSX, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "SO1001_status.xlsx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip archive")
}

func TestHandleExport_UnsupportedFormat(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO1001/export?format=pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	client.AssertNotCalled(t, "ListDocuments", mock.Anything, mock.Anything)
}

func TestHandleRefresh(t *testing.T) {
	client := newClient()
	app := setupApp(t, client)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO1001", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	client.AssertNumberOfCalls(t, "ListDocuments", 2)

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["cleared"])

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/SO1001", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	client.AssertNumberOfCalls(t, "ListDocuments", 4)
}

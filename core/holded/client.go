package holded

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Document types understood by the invoicing API.
const (
	DocSalesOrder = "salesorder"
	DocWaybill    = "waybill"
)

// maxErrorBody caps how much of an error response is copied into UpstreamError.
const maxErrorBody = 512

// Record is one loosely structured JSON object returned by the API.
// Field presence and types vary between accounts and API versions, so records are
// normalized by the caller instead of being decoded into fixed structs here.
type Record map[string]any

// Client defines the read operations used against the invoicing API.
type Client interface {
	// ListDocuments returns every document of the given type (e.g. DocSalesOrder).
	ListDocuments(ctx context.Context, docType string) ([]Record, error)
	// ListShippedItems returns the shipped items report of a sales order.
	ListShippedItems(ctx context.Context, orderID string) ([]Record, error)
}

// NewClient creates a new API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid holded base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid holded base url %q: scheme must be http or https", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	shippedPath := cfg.ShippedItemsPath
	if shippedPath == "" {
		shippedPath = "/documents/salesorder/%s/shippeditems"
	}

	return &httpClient{
		baseURL:     base.String(),
		apiKey:      cfg.APIKey,
		shippedPath: shippedPath,
		client: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}, nil
}

type httpClient struct {
	baseURL     string
	apiKey      string
	shippedPath string
	client      *http.Client
}

func (c *httpClient) ListDocuments(ctx context.Context, docType string) ([]Record, error) {
	return c.get(ctx, "list "+docType, "/documents/"+url.PathEscape(docType))
}

func (c *httpClient) ListShippedItems(ctx context.Context, orderID string) ([]Record, error) {
	if orderID == "" {
		return nil, &UpstreamError{Op: "shipped items", Err: errors.New("empty order id")}
	}
	return c.get(ctx, "shipped items "+orderID, fmt.Sprintf(c.shippedPath, url.PathEscape(orderID)))
}

func (c *httpClient) get(ctx context.Context, op, path string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(snippet)))}
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return records, nil
}

// decodeRecords accepts the JSON array the API returns on success.
// The API reports some failures as a 200 with an {"status":0,"info":"..."} object.
func decodeRecords(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []Record{}, nil
	}

	switch trimmed[0] {
	case '[':
		var raw []any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		records := make([]Record, 0, len(raw))
		for _, item := range raw {
			// Non-object entries carry no usable fields
			if obj, ok := item.(map[string]any); ok {
				records = append(records, Record(obj))
			}
		}
		return records, nil
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if info, ok := obj["info"]; ok {
			return nil, fmt.Errorf("api error: %v", info)
		}
		return nil, errors.New("unexpected object response, expected a list")
	default:
		return nil, errors.New("unexpected response, expected a JSON list")
	}
}

package storeservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is an HTTP client for StoreService.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a StoreService client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStore fetches a store by ID.
func (c *Client) GetStore(ctx context.Context, storeID int64) (*Store, error) {
	url := fmt.Sprintf("%s/internal/stores/%d", c.baseURL, storeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrStoreNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var store Store
	if err := json.NewDecoder(resp.Body).Decode(&store); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &store, nil
}

// GetStoreWithGracefulDegradation fetches a store, downgrading transport
// and decoding failures to ErrServiceDegraded. A definitive "store not
// found" still passes through: that is a business answer, not an outage.
func (c *Client) GetStoreWithGracefulDegradation(ctx context.Context, storeID int64) (*Store, error) {
	store, err := c.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			c.log.Warn("Store id=%d not found in StoreService", storeID)
			return nil, err
		}

		c.log.Error("StoreService unavailable, applying graceful degradation for store_id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: store_id=%d, error=%v", ErrServiceDegraded, storeID, err)
	}

	return store, nil
}

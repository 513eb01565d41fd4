package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/akarpovs/stockkeeper/internal/client/models"
)

// Endpoint paths on the gateway. The list endpoint lives under /items/id
// and returns a plain JSON array; upserts are POSTs to /items with a single
// record in the body.
const (
	listPath   = "/items/id"
	upsertPath = "/items"
)

// HTTPClient implements Client over plain HTTP.
//
// The zero value is not usable; construct it with NewHTTPClient. Credential
// state (mode, bearer token) is owned by the single-threaded client event
// loop and is not synchronized.
type HTTPClient struct {
	baseURL string
	apiKey  string
	mode    AuthMode
	token   string
	http    *http.Client
}

// NewHTTPClient builds a gateway client for the given base URL. The client
// starts in API-key mode so unauthenticated browsing can still list items.
// With timeout zero no request deadline applies and a hung call hangs the
// pending operation.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) (*HTTPClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid gateway url: %w", err)
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		mode:    ModeAPIKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// UseBearer switches the client to session-token auth.
func (c *HTTPClient) UseBearer(token string) {
	c.mode = ModeBearer
	c.token = token
}

// UseAPIKey reverts the client to the default read credential.
func (c *HTTPClient) UseAPIKey() {
	c.mode = ModeAPIKey
	c.token = ""
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	switch c.mode {
	case ModeBearer:
		req.Header.Set("Authorization", "Bearer "+c.token)
	default:
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status %s", ErrBadResponse, resp.Status)
	}
	return body, nil
}

// List fetches and strictly parses the full item collection.
func (c *HTTPClient) List(ctx context.Context) ([]models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	items, err := models.ParseItems(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return items, nil
}

func (c *HTTPClient) post(ctx context.Context, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+upsertPath, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// Upsert posts one full item record.
func (c *HTTPClient) Upsert(ctx context.Context, item models.Item) error {
	return c.post(ctx, item)
}

// SoftDelete posts the blank-field tombstone for id.
func (c *HTTPClient) SoftDelete(ctx context.Context, id string) error {
	return c.post(ctx, models.NewTombstone(id))
}

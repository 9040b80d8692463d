// Package client is an HTTP client for the journal entry API, used by the journey CLI.
//
// Error responses are returned as *ResponseError carrying the decoded journal.ErrorResponse.
// A 404 also matches journal.ErrNotFound with errors.Is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/information-sharing-networks/journey/internal/journal"
	journalhandlers "github.com/information-sharing-networks/journey/internal/journal/handlers"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for the API served at baseURL (e.g http://localhost:8080).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute, got %q", baseURL)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ResponseError is returned when the API answers with an error status.
type ResponseError struct {
	StatusCode int
	Response   journal.ErrorResponse
}

func (e *ResponseError) Error() string {
	if e.Response.ErrorKey != "" {
		return fmt.Sprintf("%d %s: %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.Response.Detail, e.Response.Message)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *ResponseError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return journal.ErrNotFound
	}
	return nil
}

// List returns the entries matching c in the requested order.
func (c *Client) List(ctx context.Context, criteria journal.Criteria, orders []journal.SortOrder) ([]journal.EntryDTO, error) {
	if err := criteria.CheckQuery(); err != nil {
		return nil, err
	}
	query := criteria.Query()
	for _, o := range orders {
		query.Add("sort", o.String())
	}

	var entries []journal.EntryDTO
	if err := c.do(ctx, http.MethodGet, "", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching c.
func (c *Client) Count(ctx context.Context, criteria journal.Criteria) (int64, error) {
	if err := criteria.CheckQuery(); err != nil {
		return 0, err
	}
	var n int64
	if err := c.do(ctx, http.MethodGet, "/count", criteria.Query(), nil, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Client) Get(ctx context.Context, id int64) (journal.EntryDTO, error) {
	var entry journal.EntryDTO
	if err := c.do(ctx, http.MethodGet, "/"+strconv.FormatInt(id, 10), nil, nil, &entry); err != nil {
		return journal.EntryDTO{}, err
	}
	return entry, nil
}

func (c *Client) Create(ctx context.Context, dto journal.EntryDTO) (journal.EntryDTO, error) {
	var created journal.EntryDTO
	if err := c.do(ctx, http.MethodPost, "", nil, dto, &created); err != nil {
		return journal.EntryDTO{}, err
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, dto journal.EntryDTO) (journal.EntryDTO, error) {
	var updated journal.EntryDTO
	if err := c.do(ctx, http.MethodPut, "", nil, dto, &updated); err != nil {
		return journal.EntryDTO{}, err
	}
	return updated, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// do sends a request to the journal entry resource and decodes a successful response into out (if not nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(journalhandlers.ResourcePath + path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// #nosec G704 -- the base URL comes from the client configuration
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, u.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respErr := &ResponseError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(resp.Body)
		// a proxy may answer with a non JSON body, keep the status in that case
		_ = json.Unmarshal(data, &respErr.Response)
		return respErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

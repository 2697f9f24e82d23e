// internal/client/client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unclebandit/advocates-backend/internal/model"
)

// AdvocatesPath is the data provider endpoint.
const AdvocatesPath = "/api/advocates"

// Client reads the advocate list from the HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Data []model.RawAdvocate `json:"data"`
}

// FetchAdvocates issues GET /api/advocates and returns the normalized records.
func (c *Client) FetchAdvocates(ctx context.Context) ([]model.Advocate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+AdvocatesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch advocates: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var body envelope
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode advocates: %w", err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("decode advocates: response has no data field")
	}
	return model.NormalizeAll(body.Data), nil
}

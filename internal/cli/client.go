package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	httpserver "rqsim/internal/http"
)

// Client calls a remote rqsim server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// Schedule posts req to /schedule. A server-side {error} body is returned
// as an error.
func (c *Client) Schedule(ctx context.Context, req httpserver.ScheduleRequest) (httpserver.ScheduleResponse, error) {
	var out httpserver.ScheduleResponse

	data, err := json.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("marshal request: %w", err)
	}
	url := c.BaseURL + "/schedule"
	c.Logger.Debug().Str("url", url).RawJSON("body", data).Msg("HTTP request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return out, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return out, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("read response: %w", err)
	}
	c.Logger.Debug().Int("status", resp.StatusCode).Bytes("body", body).Msg("HTTP response")

	if resp.StatusCode != http.StatusOK {
		var e httpserver.ErrorResponse
		if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
			return out, fmt.Errorf("server: %s", e.Error)
		}
		return out, fmt.Errorf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("parse response: %w", err)
	}
	return out, nil
}

package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Client retry defaults
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
)

// APIError is a non-2xx answer from the calculator API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// CalculateRequest is the body of POST /api/v1/calculate
type CalculateRequest struct {
	Player     string             `json:"player,omitempty"`
	Options    calculator.Options `json:"options"`
	Sort       string             `json:"sort,omitempty"`
	Descending bool               `json:"descending,omitempty"`
}

// SavePlayerRequest is the body of PUT /api/v1/players/{name}
type SavePlayerRequest struct {
	Skills map[domain.Skill]int `json:"skills"`
	Flags  map[domain.Flag]int  `json:"flags"`
}

// APIClient handles communication with the HerbFarmCalc API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
// with exponential backoff. 4xx answers are returned to the caller untouched.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			if c.RetryDelay == 0 {
				jitter = 0
			}
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeAPIError reads the {"error": "..."} body the API sends on failure
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// getJSON runs a request and decodes a 200 answer into out
func (c *APIClient) getJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Calculate runs the calculator for a stored player
func (c *APIClient) Calculate(ctx context.Context, req CalculateRequest) (*domain.CalculatorResult, error) {
	var result domain.CalculatorResult
	if err := c.getJSON(ctx, http.MethodPost, "/api/v1/calculate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPlayer fetches a stored player's skills and flags
func (c *APIClient) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	var state domain.PlayerState
	if err := c.getJSON(ctx, http.MethodGet, "/api/v1/players/"+url.PathEscape(name), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SavePlayer stores a player's skills and flags
func (c *APIClient) SavePlayer(ctx context.Context, name string, req SavePlayerRequest) error {
	return c.getJSON(ctx, http.MethodPut, "/api/v1/players/"+url.PathEscape(name), req, nil)
}

// ListPlayers lists the stored player names
func (c *APIClient) ListPlayers(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.getJSON(ctx, http.MethodGet, "/api/v1/players", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Healthz checks the API liveness endpoint. It does not retry.
func (c *APIClient) Healthz(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

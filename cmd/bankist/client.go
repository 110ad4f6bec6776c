package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bankist/internal/dto"
	apierrors "bankist/internal/errors"
)

// client talks to the bankist HTTP API
type client struct {
	base string
	http *http.Client
}

func newClient(base string) *client {
	return &client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is a standardized error response returned by the server
type apiError struct {
	status   int
	response apierrors.ErrorResponse
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s (%s)", e.response.Error.Message, e.response.Error.Code)
}

func (c *client) screen(ctx context.Context) (*dto.ScreenResponse, error) {
	var view dto.ScreenResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/session", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *client) post(ctx context.Context, path string, body interface{}) (*dto.ScreenResponse, error) {
	var view dto.ScreenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/session"+path, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *client) accounts(ctx context.Context) (*dto.AccountListResponse, error) {
	var list dto.AccountListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/accounts", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &apiError{status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr.response); err != nil {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

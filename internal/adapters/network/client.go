// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network provides the HTTP client used to reach the country directory.
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes bounds how much of a response body is decoded.
const maxBodyBytes = 32 << 20

// ErrUnexpectedStatus is returned when the server answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// HTTPClient implements domain.NetworkClient interface.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a new HTTP client with timeout.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		},
		userAgent: userAgent,
	}
}

// NewHTTPClientWith wraps an existing http.Client, mainly for tests.
func NewHTTPClientWith(client *http.Client, userAgent string) *HTTPClient {
	return &HTTPClient{client: client, userAgent: userAgent}
}

// GetJSON issues a GET request to url and decodes the JSON body into target.
func (c *HTTPClient) GetJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", req.URL.Host, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CloseIdleConnections releases pooled connections held by the client.
func (c *HTTPClient) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

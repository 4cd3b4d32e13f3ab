// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 4 << 10

// HTTPTransport sends requests to a base URL with retries.
type HTTPTransport struct {
	BaseURL string
	Header  http.Header
	Client  *retryablehttp.Client
}

// HTTPOption configures an HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithToken sends a private token with every request.
func WithToken(token string) HTTPOption {
	return func(t *HTTPTransport) { t.Header.Set("PRIVATE-TOKEN", token) }
}

// WithHeader sends an additional header with every request.
func WithHeader(key, value string) HTTPOption {
	return func(t *HTTPTransport) { t.Header.Add(key, value) }
}

// WithRetryClient replaces the retrying client.
func WithRetryClient(c *retryablehttp.Client) HTTPOption {
	return func(t *HTTPTransport) { t.Client = c }
}

// NewHTTPTransport returns a transport for baseURL (e.g.,
// "https://gitlab.example.com/api/v4"). The default client retries with
// backoff and does not log.
func NewHTTPTransport(baseURL string, opts ...HTTPOption) *HTTPTransport {
	c := retryablehttp.NewClient()
	c.Logger = nil
	t := &HTTPTransport{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Header:  make(http.Header),
		Client:  c,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, method, url string, body, out any) (*Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s %s", method, url)
		}
		payload = b
	}

	var raw any
	if payload != nil {
		raw = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, t.BaseURL+url, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, url)
	}
	for k, vs := range t.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	r := &Response{StatusCode: resp.StatusCode, Header: resp.Header}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return r, &APIError{StatusCode: resp.StatusCode, Method: method, URL: url, Body: strings.TrimSpace(string(b))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return r, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return r, errors.Wrapf(err, "decode %s %s", method, url)
	}
	return r, nil
}

// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package remote is the HTTP client for the recommendation service.

The recommendation service owns the wine and dish records of every restaurant.
This package only moves JSON in and out of it; the shape of the payloads is
owned by the wine and dish packages.

# Error Mapping

Upstream status codes are translated into [apperr.AppError] values so the
admin API answers with its own envelope:

	404        → NOT_FOUND
	401, 403   → UNAUTHORIZED (the service token was rejected)
	400, 422   → UNPROCESSABLE with the upstream message
	409        → CONFLICT
	429        → RATE_LIMITED
	other ≥300 → UPSTREAM_ERROR (502)
*/
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/sommelier/internal/platform/apperr"
	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
)

// Options configures a [Client].
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// RatePerSecond caps outgoing requests. Zero disables the limiter.
	RatePerSecond float64
	Burst         int

	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client talks to the recommendation service over JSON/HTTP.
//
// # Concurrency
//
// Client is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient validates options and builds a [Client].
func NewClient(options Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(options.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("remote: invalid base URL %q", options.BaseURL)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	var limiter *rate.Limiter
	if options.RatePerSecond > 0 {
		burst := options.Burst
		if burst < 1 {
			burst = constants.UpstreamBurst
		}
		limiter = rate.NewLimiter(rate.Limit(options.RatePerSecond), burst)
	}

	return &Client{
		baseURL: base,
		token:   options.Token,
		http:    httpClient,
		limiter: limiter,
	}, nil
}

// # Requests

/*
Do sends a JSON request and decodes the JSON response into out.

Parameters:
  - context: Request-scoped context, honoured by the limiter and the transport
  - method: HTTP method
  - path: Path relative to the base URL (e.g. "/restaurants/r1/wines")
  - body: Request payload, or nil
  - out: Destination pointer, or nil to discard the response body

Returns:
  - error: *apperr.AppError for upstream failures, or a transport error wrapped as BadGateway
*/
func (client *Client) Do(context context.Context, method, path string, body, out any) error {

	// 1. Respect the outgoing budget
	if client.limiter != nil {
		if err := client.limiter.Wait(context); err != nil {
			return fmt.Errorf("remote: rate limiter: %w", err)
		}
	}

	// 2. Build the request
	request, err := client.newRequest(context, method, path, body)
	if err != nil {
		return err
	}

	// 3. Send
	start := time.Now()
	response, err := client.http.Do(request)
	if err != nil {
		if contextErr := context.Err(); contextErr != nil {
			return contextErr
		}
		return apperr.BadGateway(fmt.Errorf("remote: %s %s: %w", method, path, err))
	}
	defer response.Body.Close()

	ctxutil.GetLogger(context).Debug("upstream_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	// 4. Map failures
	if response.StatusCode >= http.StatusMultipleChoices {
		return mapStatus(response)
	}

	// 5. Decode
	if out == nil || response.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return apperr.BadGateway(fmt.Errorf("remote: decode %s %s: %w", method, path, err))
	}

	return nil
}

// Ping checks that the recommendation service answers. Any non-5xx status
// counts as reachable.
func (client *Client) Ping(context context.Context) error {
	request, err := client.newRequest(context, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}

	response, err := client.http.Do(request)
	if err != nil {
		return fmt.Errorf("remote: ping failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("remote: ping returned %s", response.Status)
	}
	return nil
}

// newRequest resolves path against the base URL and attaches auth headers.
func (client *Client) newRequest(context context.Context, method, path string, body any) (*http.Request, error) {
	target := client.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("remote: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(context, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("remote: build %s %s: %w", method, path, err)
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+client.token)
	}
	if requestID := ctxutil.GetRequestID(context); requestID != "" {
		request.Header.Set(constants.HeaderXRequestID, requestID)
	}

	return request, nil
}

// # Error Mapping

// upstreamError covers the error shapes the recommendation service returns.
type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// mapStatus converts a non-2xx response into an [apperr.AppError].
func mapStatus(response *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, constants.UpstreamMaxErrorBody))
	message := upstreamMessage(raw)

	switch response.StatusCode {
	case http.StatusNotFound:
		return apperr.NotFound("Record")
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.Unauthorized("The recommendation service rejected the service token")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "The recommendation service rejected the record"
		}
		return apperr.Unprocessable(message)
	case http.StatusConflict:
		if message == "" {
			message = "The record was modified concurrently"
		}
		return apperr.Conflict(message)
	case http.StatusTooManyRequests:
		retryAfter, err := strconv.Atoi(response.Header.Get(constants.HeaderRetryAfter))
		if err != nil || retryAfter < 0 {
			retryAfter = 1
		}
		return apperr.RateLimited(retryAfter)
	default:
		return apperr.BadGateway(fmt.Errorf("remote: upstream %s: %s", response.Status, message))
	}
}

// upstreamMessage extracts a human-readable message from an error body.
func upstreamMessage(raw []byte) string {
	var parsed upstreamError
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

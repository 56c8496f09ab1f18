// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/platform/apperr"
	"github.com/taibuivan/sommelier/internal/platform/remote"
)

// newClient points a client at handler.
func newClient(t *testing.T, handler http.HandlerFunc) *remote.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := remote.NewClient(remote.Options{
		BaseURL: server.URL + "/api/",
		Token:   "service-token",
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

/*
TestClient_Do_RoundTrip verifies path joining, auth header and JSON bodies.
*/
func TestClient_Do_RoundTrip(t *testing.T) {
	client := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/api/restaurants/r1/wines", request.URL.Path)
		assert.Equal(t, "Bearer service-token", request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Chablis", body["wine_name"])

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id":"w1"}`))
	})

	var out struct {
		ID string `json:"id"`
	}
	err := client.Do(context.Background(), http.MethodPost, "/restaurants/r1/wines", map[string]string{"wine_name": "Chablis"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "w1", out.ID)
}

func TestClient_Do_NoContent(t *testing.T) {
	client := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})

	var out map[string]any
	require.NoError(t, client.Do(context.Background(), http.MethodDelete, "/restaurants/r1/wines/w1", nil, &out))
	assert.Nil(t, out)
}

/*
TestClient_Do_StatusMapping checks the upstream status to application error table.
*/
func TestClient_Do_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantHTTP int
		wantMsg  string
	}{
		{"not_found", http.StatusNotFound, ``, "NOT_FOUND", 404, ""},
		{"unauthorized", http.StatusUnauthorized, ``, "UNAUTHORIZED", 401, ""},
		{"forbidden", http.StatusForbidden, ``, "UNAUTHORIZED", 401, ""},
		{"bad_request_message", http.StatusBadRequest, `{"message":"year is invalid"}`, "UNPROCESSABLE", 422, "year is invalid"},
		{"unprocessable_error_field", http.StatusUnprocessableEntity, `{"error":"price must be positive"}`, "UNPROCESSABLE", 422, "price must be positive"},
		{"unprocessable_plain_text", http.StatusUnprocessableEntity, "bad grape", "UNPROCESSABLE", 422, "bad grape"},
		{"conflict", http.StatusConflict, ``, "CONFLICT", 409, ""},
		{"rate_limited", http.StatusTooManyRequests, ``, "RATE_LIMITED", 429, ""},
		{"server_error", http.StatusInternalServerError, `boom`, "UPSTREAM_ERROR", 502, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
				_, _ = writer.Write([]byte(tt.body))
			})

			err := client.Do(context.Background(), http.MethodGet, "/restaurants/r1/wines", nil, nil)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantHTTP, appErr.HTTPStatus)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestClient_Do_MalformedBody(t *testing.T) {
	client := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{not json`))
	})

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/restaurants/r1/wines", nil, &out)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
}

func TestClient_Do_CancelledContext(t *testing.T) {
	client := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Do(ctx, http.MethodGet, "/restaurants/r1/wines", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Ping(t *testing.T) {
	healthy := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/health", request.URL.Path)
		writer.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, healthy.Ping(context.Background()))

	down := newClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Ping(context.Background()))
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := remote.NewClient(remote.Options{BaseURL: "not a url"})
	assert.Error(t, err)
}

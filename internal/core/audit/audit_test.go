// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/core/audit"
	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
	"github.com/taibuivan/sommelier/internal/platform/sec"
	"github.com/taibuivan/sommelier/pkg/pointer"
)

// memoryRepository is an in-memory [audit.Repository].
type memoryRepository struct {
	mu         sync.Mutex
	entries    []*audit.Entry
	lastFilter audit.Filter
	failInsert bool
}

func (repository *memoryRepository) InsertEntry(_ context.Context, entry *audit.Entry) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failInsert {
		return errors.New("database down")
	}
	repository.entries = append(repository.entries, entry)
	return nil
}

func (repository *memoryRepository) ListEntries(_ context.Context, filter audit.Filter, limit, offset int) ([]*audit.Entry, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastFilter = filter
	return repository.entries, len(repository.entries), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withOperator attaches claims for role to ctx.
func withOperator(ctx context.Context, role sec.UserRole) context.Context {
	return ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "op-1", Role: string(role)})
}

/*
TestService_Record verifies that actor, client IP and snapshots are captured.
*/
func TestService_Record(t *testing.T) {
	repository := &memoryRepository{}
	service := audit.NewService(repository, discardLogger())

	ctx := withOperator(context.Background(), sec.RoleOperator)
	ctx = ctxutil.WithClientIP(ctx, "203.0.113.7")

	service.Record(ctx, audit.Change{
		Action:       audit.ActionUpdate,
		EntityType:   audit.EntityWine,
		EntityID:     "w1",
		RestaurantID: "r1",
		Before:       map[string]any{"price": 40},
		After:        map[string]any{"price": 42.5},
	})

	require.Len(t, repository.entries, 1)
	entry := repository.entries[0]

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "op-1", entry.ActorID)
	assert.Equal(t, "203.0.113.7", entry.IPAddress)
	assert.Equal(t, audit.ActionUpdate, entry.Action)
	assert.Equal(t, "r1", entry.RestaurantID)
	assert.JSONEq(t, `{"price":40}`, string(entry.Before))
	assert.JSONEq(t, `{"price":42.5}`, string(entry.After))
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestService_Record_NilSnapshots(t *testing.T) {
	repository := &memoryRepository{}
	service := audit.NewService(repository, discardLogger())

	service.Record(context.Background(), audit.Change{Action: audit.ActionDelete, EntityType: audit.EntityDish, EntityID: "d1"})

	require.Len(t, repository.entries, 1)
	assert.Nil(t, repository.entries[0].Before)
	assert.Nil(t, repository.entries[0].After)
	assert.Empty(t, repository.entries[0].ActorID)
}

func TestService_Record_StoreFailureIsSwallowed(t *testing.T) {
	repository := &memoryRepository{failInsert: true}
	service := audit.NewService(repository, discardLogger())

	assert.NotPanics(t, func() {
		service.Record(context.Background(), audit.Change{Action: audit.ActionCreate, EntityType: audit.EntityWine, EntityID: "w1"})
	})
}

/*
TestHandler_ListEntries covers role enforcement and filter validation.
*/
func TestHandler_ListEntries(t *testing.T) {
	tests := []struct {
		name       string
		role       sec.UserRole
		target     string
		wantStatus int
		wantFilter audit.Filter
	}{
		{"anonymous", "", "/", http.StatusUnauthorized, audit.Filter{}},
		{"operator_forbidden", sec.RoleOperator, "/", http.StatusForbidden, audit.Filter{}},
		{"admin", sec.RoleAdmin, "/", http.StatusOK, audit.Filter{}},
		{"admin_filtered", sec.RoleAdmin, "/?entity_type=wine&entity_id=w1", http.StatusOK, audit.Filter{EntityType: pointer.To("wine"), EntityID: pointer.To("w1")}},
		{"unknown_entity_type", sec.RoleAdmin, "/?entity_type=cheese", http.StatusBadRequest, audit.Filter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &memoryRepository{}
			handler := audit.NewHandler(audit.NewService(repository, discardLogger()))

			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.role != "" {
				request = request.WithContext(withOperator(request.Context(), tt.role))
			}

			recorder := httptest.NewRecorder()
			handler.Routes().ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantFilter, repository.lastFilter)

				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Contains(t, body, "meta")
			}
		})
	}
}

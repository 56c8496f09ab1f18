// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
	"github.com/taibuivan/sommelier/pkg/uuid"
)

// Recorder is the port catalog services use to report their writes.
type Recorder interface {
	Record(context context.Context, change Change)
}

// Service records and lists audit entries.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs an audit [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

/*
Record stores change with the actor and client IP found in context.

The write it describes has already reached the recommendation service, so a
failure here is logged and never returned to the caller.
*/
func (service *Service) Record(context context.Context, change Change) {
	entry := &Entry{
		ID:           uuid.New(),
		ActorID:      ctxutil.ActorID(context),
		Action:       change.Action,
		EntityType:   change.EntityType,
		EntityID:     change.EntityID,
		RestaurantID: change.RestaurantID,
		Before:       service.marshal(change.Before),
		After:        service.marshal(change.After),
		IPAddress:    ctxutil.GetClientIP(context),
		CreatedAt:    service.now().UTC(),
	}

	if err := service.repo.InsertEntry(context, entry); err != nil {
		ctxutil.GetLogger(context).Error("audit_record_failed",
			slog.String("action", string(change.Action)),
			slog.String("entity_type", string(change.EntityType)),
			slog.String("entity_id", change.EntityID),
			slog.Any("error", err),
		)
	}
}

// ListEntries returns a page of entries, newest first.
func (service *Service) ListEntries(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	return service.repo.ListEntries(context, filter, limit, offset)
}

// marshal encodes a snapshot. Nil stays nil.
func (service *Service) marshal(snapshot any) json.RawMessage {
	if snapshot == nil {
		return nil
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		service.logger.Warn("audit_snapshot_unencodable", slog.Any("error", err))
		return nil
	}
	return raw
}

// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sommelier/internal/platform/middleware"
	"github.com/taibuivan/sommelier/internal/platform/respond"
	"github.com/taibuivan/sommelier/internal/platform/sec"
	"github.com/taibuivan/sommelier/internal/platform/validate"
	"github.com/taibuivan/sommelier/pkg/pagination"
	"github.com/taibuivan/sommelier/pkg/pointer"
)

// Handler exposes the audit log to administrators.
type Handler struct {
	service *Service
}

// NewHandler constructs an audit [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the audit router. Every route requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.listEntries)
	return router
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	// 1. Optional filters
	var filter Filter
	query := request.URL.Query()
	validator := &validate.Validator{}

	if entityType := strings.TrimSpace(query.Get(FieldEntityType)); entityType != "" {
		validator.OneOf(FieldEntityType, entityType, string(EntityWine), string(EntityDish))
		filter.EntityType = pointer.To(entityType)
	}
	if entityID := strings.TrimSpace(query.Get(FieldEntityID)); entityID != "" {
		filter.EntityID = pointer.To(entityID)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// 2. Page
	entries, total, err := handler.service.ListEntries(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

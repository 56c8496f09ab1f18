// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/middleware"
	requestutil "github.com/taibuivan/sommelier/internal/platform/request"
	"github.com/taibuivan/sommelier/internal/platform/respond"
	"github.com/taibuivan/sommelier/internal/platform/sec"
	"github.com/taibuivan/sommelier/internal/platform/validate"
	"github.com/taibuivan/sommelier/pkg/pagination"
	"github.com/taibuivan/sommelier/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer of the wine list.
type Handler struct {
	service       *Service
	defaultLocale string
}

// NewHandler constructs a wine [Handler]. defaultLocale applies when a
// request names no locale.
func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] with the wine endpoints.
//
// # Routing Strategy
//
//   - Reading requires [sec.RoleViewer].
//   - Writing requires [sec.RoleOperator].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleViewer))

	router.Get("/", handler.listWines)
	router.Get("/{id}", handler.getWine)

	router.Group(func(operator chi.Router) {
		operator.Use(middleware.RequireRole(sec.RoleOperator))

		operator.Post("/", handler.createWine)
		operator.Put("/{id}", handler.updateWine)
		operator.Delete("/{id}", handler.deleteWine)
	})

	return router
}

func (handler *Handler) listWines(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	// 1. Type filter, comma separated
	var filter Filter
	validator := &validate.Validator{}
	for _, raw := range query.StringSlice(request.URL.Query().Get(constants.QueryType)) {
		wineType, ok := ParseWineType(raw)
		validator.Custom(constants.QueryType, !ok, "Unknown wine type: "+raw)
		if ok {
			filter.Types = append(filter.Types, wineType)
		}
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// 2. Page
	locale := requestutil.Locale(request, handler.defaultLocale)
	wines, total, err := handler.service.ListWines(request.Context(), filter, locale, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, wines, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getWine(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	wine, err := handler.service.GetWine(request.Context(), requestutil.ID(request, "id"), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, wine)
}

func (handler *Handler) createWine(writer http.ResponseWriter, request *http.Request) {
	var input Wine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := requestutil.Locale(request, handler.defaultLocale)
	wine, err := handler.service.CreateWine(request.Context(), &input, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, wine)
}

func (handler *Handler) updateWine(writer http.ResponseWriter, request *http.Request) {
	var input Wine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := requestutil.Locale(request, handler.defaultLocale)
	wine, err := handler.service.UpdateWine(request.Context(), requestutil.ID(request, "id"), &input, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, wine)
}

func (handler *Handler) deleteWine(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteWine(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

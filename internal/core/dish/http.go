// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/middleware"
	requestutil "github.com/taibuivan/sommelier/internal/platform/request"
	"github.com/taibuivan/sommelier/internal/platform/respond"
	"github.com/taibuivan/sommelier/internal/platform/sec"
	"github.com/taibuivan/sommelier/pkg/pagination"
)

// Handler implements the HTTP layer of the menu.
type Handler struct {
	service       *Service
	defaultLocale string
}

// NewHandler constructs a dish [Handler].
func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] with the dish endpoints. Reading requires
// [sec.RoleViewer] and writing [sec.RoleOperator].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleViewer))

	router.Get("/", handler.listDishes)
	router.Get("/{id}", handler.getDish)

	router.Group(func(operator chi.Router) {
		operator.Use(middleware.RequireRole(sec.RoleOperator))

		operator.Post("/", handler.createDish)
		operator.Put("/{id}", handler.updateDish)
		operator.Delete("/{id}", handler.deleteDish)
	})

	return router
}

func (handler *Handler) listDishes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{Section: request.URL.Query().Get(constants.QuerySection)}
	locale := requestutil.Locale(request, handler.defaultLocale)

	dishes, total, err := handler.service.ListDishes(request.Context(), filter, locale, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, dishes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDish(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	dish, err := handler.service.GetDish(request.Context(), requestutil.ID(request, "id"), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dish)
}

func (handler *Handler) createDish(writer http.ResponseWriter, request *http.Request) {
	var input Dish
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := requestutil.Locale(request, handler.defaultLocale)
	dish, err := handler.service.CreateDish(request.Context(), &input, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, dish)
}

func (handler *Handler) updateDish(writer http.ResponseWriter, request *http.Request) {
	var input Dish
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := requestutil.Locale(request, handler.defaultLocale)
	dish, err := handler.service.UpdateDish(request.Context(), requestutil.ID(request, "id"), &input, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dish)
}

func (handler *Handler) deleteDish(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteDish(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

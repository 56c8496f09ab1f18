// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sommelier/internal/core/catalog"
	"github.com/taibuivan/sommelier/internal/platform/middleware"
	requestutil "github.com/taibuivan/sommelier/internal/platform/request"
	"github.com/taibuivan/sommelier/internal/platform/respond"
	"github.com/taibuivan/sommelier/internal/platform/sec"
)

// Handler implements the HTTP layer for the reference catalogs.
type Handler struct {
	defaultLocale string
}

// NewHandler constructs a reference [Handler]. defaultLocale labels the lists
// when a request names no locale.
func NewHandler(defaultLocale string) *Handler {
	return &Handler{defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleViewer))

	router.Get("/grapes", handler.listGrapes)
	router.Get("/aromas", handler.listAromas)
	router.Get("/formats", handler.listFormats)
	router.Get("/wine-types", handler.listWineTypes)

	return router
}

/*
GET /api/v1/reference/grapes.

Description: Lists the grape varieties as selection options. The option
value is the numeric variety id.

Request:
  - q: string (optional, case-insensitive name search)

Response:
  - 200: []Option: Success
*/
func (handler *Handler) listGrapes(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, GrapeOptions(request.URL.Query().Get("q")))
}

/*
GET /api/v1/reference/aromas.

Description: Lists the aroma keywords in catalog order with their palette.
The position of an entry is the food category sent on the wire.

Request:
  - lang: string (optional, label locale)

Response:
  - 200: []Aroma: Success
*/
func (handler *Handler) listAromas(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	respond.OK(writer, catalog.Aromas(locale))
}

/*
GET /api/v1/reference/formats.

Description: Lists the standard bottle formats and their volume in centiliters.

Response:
  - 200: []VolumeFormat: Success
*/
func (handler *Handler) listFormats(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, catalog.VolumeFormats())
}

/*
GET /api/v1/reference/wine-types.

Description: Lists the wine types in menu order.

Request:
  - lang: string (optional, label locale)

Response:
  - 200: []WineTypeOption: Success
*/
func (handler *Handler) listWineTypes(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	respond.OK(writer, WineTypeOptions(locale))
}

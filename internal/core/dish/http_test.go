// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/core/dish"
	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
	"github.com/taibuivan/sommelier/internal/platform/sec"
)

func serve(t *testing.T, handler *dish.Handler, role sec.UserRole, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		claims := &sec.AuthClaims{UserID: "op-1", Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)
	return recorder
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHandler_Roles(t *testing.T) {
	validBody := `{"name":"Fondue","keywords":[{"key":"nuttyHardCheese"}]}`

	tests := []struct {
		name       string
		role       sec.UserRole
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"anonymous_list", "", http.MethodGet, "/", "", http.StatusUnauthorized},
		{"viewer_list", sec.RoleViewer, http.MethodGet, "/", "", http.StatusOK},
		{"viewer_get", sec.RoleViewer, http.MethodGet, "/1", "", http.StatusOK},
		{"viewer_update", sec.RoleViewer, http.MethodPut, "/1", validBody, http.StatusForbidden},
		{"operator_create", sec.RoleOperator, http.MethodPost, "/", validBody, http.StatusCreated},
		{"operator_update", sec.RoleOperator, http.MethodPut, "/1", validBody, http.StatusOK},
		{"operator_delete", sec.RoleOperator, http.MethodDelete, "/2", "", http.StatusNoContent},
		{"operator_invalid_json", sec.RoleOperator, http.MethodPost, "/", `[`, http.StatusBadRequest},
		{"missing_dish", sec.RoleViewer, http.MethodGet, "/99", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := dish.NewHandler(newService(seed("Entrée", "Plat"), &recorder{}), "fr")
			recorder := serve(t, handler, tt.role, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}
}

func TestHandler_ListSection(t *testing.T) {
	handler := dish.NewHandler(newService(seed("Entrée", "Plat", "Entrée"), &recorder{}), "fr")

	recorder := serve(t, handler, sec.RoleViewer, http.MethodGet, "/?section=ENTR%C3%89E", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, decodeEnvelope(t, recorder).Meta.Total)
}

/*
TestHandler_CreateInEnglish checks that text edited under an English
Accept-Language is mirrored into both locales, replacing the stored French.
*/
func TestHandler_CreateInEnglish(t *testing.T) {
	repository := seed()
	handler := dish.NewHandler(newService(repository, &recorder{}), "fr")

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"name":"Perch fillet","name_by_locale":{"fr":"Filets de perche"},"keywords":[{"label":"Fin fish"}]}`))
	request.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	claims := &sec.AuthClaims{UserID: "op-1", Role: string(sec.RoleOperator)}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	require.Len(t, repository.writes, 1)
	assert.Equal(t, "Perch fillet", repository.writes[0].DishName["en"])
	assert.Equal(t, "Perch fillet", repository.writes[0].DishName["fr"])
	assert.Equal(t, intPointer(11), repository.writes[0].FoodCat1)

	var created dish.Dish
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &created))
	assert.Equal(t, "Perch fillet", created.Name)
	assert.Equal(t, "Fin fish", created.Keywords[0].Label)
}

// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/internal/platform/apperr"
	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
	"github.com/taibuivan/sommelier/internal/platform/sec"
	"github.com/taibuivan/sommelier/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Locale resolves the content locale for the request.

# Resolution Order

 1. The '?lang=' query parameter.
 2. The best-ranked tag of the Accept-Language header.
 3. fallback.

The result is always one of the supported content locales ("fr" or "en").
*/
func Locale(request *http.Request, fallback string) string {

	// 1. Explicit query parameter
	if lang := strings.TrimSpace(request.URL.Query().Get(constants.QueryLang)); lang != "" {
		return multilingual.Canonical(lang)
	}

	// 2. Accept-Language, already sorted by quality
	if header := request.Header.Get(constants.HeaderAcceptLanguage); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			return multilingual.Canonical(tags[0].String())
		}
	}

	// 3. Server default
	return multilingual.Canonical(fallback)
}

/*
RequiredClaims ensures the request is authenticated and returns the operator claims.

Returns:
  - *sec.AuthClaims: The authenticated operator claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get operator claims
	claims := ctxutil.GetAuthUser(request.Context())

	// If the operator is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

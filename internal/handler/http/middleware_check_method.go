// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with the JSON envelope and an Allow header listing the methods that
// do match the requested path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routedMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			utils.WriteMessage(w, ErrRouteNotFound.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteMessage(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
	}
}

// notFound replaces chi's plain-text 404 with the JSON envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, ErrRouteNotFound.Error(), http.StatusNotFound)
}

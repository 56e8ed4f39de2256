// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. Instead of chi's 405 it answers 404 Not Found,
// so a route is indistinguishable from a missing one for a caller using a
// method the route does not serve. The methods the route does serve are
// logged at debug level.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}
		sort.Strings(allowed)

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowed).
			Msg("method is not served by route")

		http.NotFound(w, r)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: if the requested
// method is not registered for the matched route, it responds like an unknown
// route (404 with a JSON body), hiding the existence of the route from callers
// that use an unsupported method.
//
// If the requested method IS registered for the route whose pattern equals
// the raw request path, the request is forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			routeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeNotFound answers 404 with the requested route echoed back.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RouteNotFoundResponse{
		Message: app.MsgRouteNotFound,
		Route:   r.URL.Path,
	}, http.StatusNotFound)
}

package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tunes-proxy-go/middleware"
	"tunes-proxy-go/stats"
)

// setupRoutes configures all HTTP routes for the proxy
func setupRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/login", loginHandler).Methods(http.MethodPost)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", statsHandler).Methods(http.MethodGet)
	router.HandleFunc("/", helpHandler).Methods(http.MethodGet)

	// Protected routes: everything under /search requires a bearer token
	search := router.PathPrefix("/search").Subrouter()
	search.Use(middleware.BearerAuth(tokenService))
	search.HandleFunc("", searchHandler).Methods(http.MethodGet)
}

// statsMiddleware records per-endpoint counters, status classes, auth
// rejections on the protected route, and response times.
func statsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := middleware.NewResponseRecorder(w)

		next.ServeHTTP(rec, r)

		s := stats.Get()
		s.RecordRequest(r.URL.Path)
		s.RecordStatus(rec.StatusCode)
		s.RecordResponseTime(time.Since(start))

		if r.URL.Path == "/search" {
			switch rec.StatusCode {
			case http.StatusUnauthorized:
				s.RecordAuthMissing()
			case http.StatusForbidden:
				s.RecordAuthRejected()
			}
		}
	})
}

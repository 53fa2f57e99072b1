package controllers

import (
	"net/http"

	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/session"
)

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"status": "ok"})
	}
}

// HealthReady reports readiness plus the live session count. Everything is in
// process memory, so readiness follows liveness.
func HealthReady(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"status":   "ok",
			"sessions": registry.Len(),
		})
	}
}

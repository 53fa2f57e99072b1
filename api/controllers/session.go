package controllers

import (
	"net/http"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/session"
	"github.com/grociko/grociko-backend/pkg/logger"
)

// SessionGet reports the current session token and engine totals, mostly for
// the client to confirm its token is live.
func SessionGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)

		payload := map[string]any{
			"session_token": middleware.SessionTokenFromContext(ctx),
		}
		if appCtx != nil {
			payload["cart_items"] = appCtx.Cart.Snapshot().TotalItems
			payload["favorites"] = appCtx.Favorites.Snapshot().TotalFavorites
		}
		responses.WriteSuccess(w, payload)
	}
}

// SessionLogout resets both engines and drops the session. The next request
// with the same token starts from a clean slate.
func SessionLogout(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := middleware.SessionTokenFromContext(ctx)
		registry.Clear(token)

		if logg != nil {
			logg.Info(ctx, "session.cleared")
		}
		responses.WriteSuccess(w, map[string]any{"logged_out": true})
	}
}

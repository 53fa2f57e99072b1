package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/session"
	"github.com/grociko/grociko-backend/pkg/logger"
)

const sessionTokenHeader = "X-Session-Token"

type sessionTokenKey struct{}

type appContextKey struct{}

// Session resolves the per-client engine pair. A client without a token gets
// a fresh one, echoed back in the response header, so the mobile app never
// has to register explicitly.
func Session(registry *session.Registry, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(sessionTokenHeader))
			if token == "" {
				token = session.NewToken()
			}

			w.Header().Set(sessionTokenHeader, token)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithSessionID(ctx, token)
			}

			appCtx, err := registry.Context(token)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			ctx = context.WithValue(ctx, sessionTokenKey{}, token)
			ctx = context.WithValue(ctx, appContextKey{}, appCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionTokenFromContext returns the token placed by the Session middleware.
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}

// AppContextFromContext returns the engine pair for the current session.
func AppContextFromContext(ctx context.Context) *session.AppContext {
	appCtx, _ := ctx.Value(appContextKey{}).(*session.AppContext)
	return appCtx
}

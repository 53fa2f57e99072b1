package session

import (
	"strings"
	"sync"

	"github.com/grociko/grociko-backend/internal/cart"
	"github.com/grociko/grociko-backend/internal/favorites"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/google/uuid"
)

// AppContext holds the engine pair for one client session. It replaces the
// mobile app's shared-context singleton: constructed once per session and
// handed to whichever handler needs it.
type AppContext struct {
	Cart      *cart.Engine
	Favorites *favorites.Engine
}

// Registry creates and tracks per-session app contexts. All state is process
// memory; sessions vanish on restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*AppContext
	closed   bool
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*AppContext{}}
}

// NewToken mints a fresh session token.
func NewToken() string {
	return uuid.NewString()
}

// Context returns the app context for the token, creating it on first use.
// Accessing the registry after Close is a programming error, not a
// recoverable condition.
func (r *Registry) Context(token string) (*AppContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, pkgerrors.New(pkgerrors.CodePrecondition, "session registry is closed")
	}

	if appCtx, ok := r.sessions[token]; ok {
		return appCtx, nil
	}

	appCtx := &AppContext{
		Cart:      cart.NewEngine(),
		Favorites: favorites.NewEngine(),
	}
	r.sessions[token] = appCtx
	return appCtx, nil
}

// Clear handles logout: both engines reset and the session is dropped.
func (r *Registry) Clear(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appCtx, ok := r.sessions[strings.TrimSpace(token)]
	if !ok {
		return
	}
	appCtx.Cart.Clear()
	appCtx.Favorites.Clear()
	delete(r.sessions, strings.TrimSpace(token))
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close rejects any further context lookups.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.sessions = map[string]*AppContext{}
}

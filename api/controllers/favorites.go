package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/api/validators"
	"github.com/grociko/grociko-backend/internal/catalog"
	"github.com/grociko/grociko-backend/internal/favorites"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/grociko/grociko-backend/pkg/logger"
	"github.com/grociko/grociko-backend/pkg/metrics"
)

type toggleFavoritePayload struct {
	ProductID string `json:"product_id" validate:"required"`
}

// FavoritesList returns the collection in add order, narrowed by search query
// or category when provided.
func FavoritesList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		if category := trimmedQuery(r, "category"); category != "" {
			entries := appCtx.Favorites.ByCategory(category)
			responses.WriteSuccess(w, favorites.State{Favorites: entries, TotalFavorites: len(entries)})
			return
		}
		if query := trimmedQuery(r, "q"); query != "" {
			entries := appCtx.Favorites.Search(query)
			responses.WriteSuccess(w, favorites.State{Favorites: entries, TotalFavorites: len(entries)})
			return
		}
		responses.WriteSuccess(w, appCtx.Favorites.Snapshot())
	}
}

// FavoritesRecent returns the newest additions first, bounded by the limit
// query parameter.
func FavoritesRecent(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		limit := 0
		if raw := trimmedQuery(r, "limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
			limit = parsed
		}

		entries := appCtx.Favorites.Recent(limit)
		responses.WriteSuccess(w, favorites.State{Favorites: entries, TotalFavorites: len(entries)})
	}
}

// FavoritesSummary returns the aggregate favorites view.
func FavoritesSummary(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}
		responses.WriteSuccess(w, appCtx.Favorites.Summary())
	}
}

// FavoritesToggle flips the favorite state of the product and reports the
// resulting state.
func FavoritesToggle(catalogSvc catalog.Service, engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		var payload toggleFavoritePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := catalogSvc.Get(ctx, payload.ProductID)
		if err != nil {
			engineMetrics.IncRejection("favorites", "toggle")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		appCtx.Favorites.Toggle(*product)
		engineMetrics.IncOperation("favorites", "toggle")
		responses.WriteSuccess(w, map[string]any{
			"product_id":  product.ID,
			"is_favorite": appCtx.Favorites.IsFavorite(product.ID),
			"total":       appCtx.Favorites.Snapshot().TotalFavorites,
		})
	}
}

// FavoritesAdd likes the product; liking an existing favorite is a no-op.
func FavoritesAdd(catalogSvc catalog.Service, engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		product, err := catalogSvc.Get(ctx, chi.URLParam(r, "productID"))
		if err != nil {
			engineMetrics.IncRejection("favorites", "add")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		appCtx.Favorites.Add(*product)
		engineMetrics.IncOperation("favorites", "add")
		responses.WriteSuccessStatus(w, http.StatusCreated, appCtx.Favorites.Snapshot())
	}
}

// FavoritesRemove unlikes the product; removing an absent id succeeds.
func FavoritesRemove(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		appCtx.Favorites.Remove(chi.URLParam(r, "productID"))
		engineMetrics.IncOperation("favorites", "remove")
		responses.WriteSuccess(w, appCtx.Favorites.Snapshot())
	}
}

// FavoritesClear empties the collection.
func FavoritesClear(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		appCtx.Favorites.Clear()
		engineMetrics.IncOperation("favorites", "clear")
		responses.WriteSuccess(w, appCtx.Favorites.Snapshot())
	}
}

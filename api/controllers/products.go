package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/catalog"
	"github.com/grociko/grociko-backend/pkg/logger"
)

// ProductsList returns the catalog, optionally narrowed by category, search
// query or the featured flag.
func ProductsList(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		params := catalog.ListParams{
			Category: trimmedQuery(r, "category"),
			Query:    trimmedQuery(r, "q"),
			Featured: trimmedQuery(r, "featured") == "true",
		}

		products, err := catalogSvc.List(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"total":    len(products),
		})
	}
}

// ProductsGet returns one product, annotated with the session's cart and
// favorites state so detail screens render from a single call.
func ProductsGet(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		product, err := catalogSvc.Get(ctx, chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload := map[string]any{"product": product}
		if appCtx := middleware.AppContextFromContext(ctx); appCtx != nil {
			payload["in_cart"] = appCtx.Cart.Contains(product.ID)
			payload["cart_quantity"] = appCtx.Cart.ItemQuantity(product.ID)
			payload["is_favorite"] = appCtx.Favorites.IsFavorite(product.ID)
		}
		responses.WriteSuccess(w, payload)
	}
}

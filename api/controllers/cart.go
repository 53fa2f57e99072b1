package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/api/validators"
	"github.com/grociko/grociko-backend/internal/catalog"
	"github.com/grociko/grociko-backend/internal/promos"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/grociko/grociko-backend/pkg/logger"
	"github.com/grociko/grociko-backend/pkg/metrics"
)

type addCartItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

type updateCartItemPayload struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type applyDiscountPayload struct {
	Code string `json:"code" validate:"required"`
}

// CartGet returns the full cart snapshot.
func CartGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}
		responses.WriteSuccess(w, appCtx.Cart.Snapshot())
	}
}

// CartSummary returns the derived totals for badges and checkout screens.
func CartSummary(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}
		responses.WriteSuccess(w, appCtx.Cart.Summary())
	}
}

// CartItemStatus reports whether and how much of a product is in the cart.
func CartItemStatus(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		productID := chi.URLParam(r, "productID")
		responses.WriteSuccess(w, map[string]any{
			"product_id": productID,
			"quantity":   appCtx.Cart.ItemQuantity(productID),
			"in_cart":    appCtx.Cart.Contains(productID),
		})
	}
}

// CartAddItem resolves the product from the catalog and adds it to the cart.
func CartAddItem(catalogSvc catalog.Service, engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := catalogSvc.Get(ctx, payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quantity := 1
		if payload.Quantity != nil {
			quantity = *payload.Quantity
		}

		if err := appCtx.Cart.AddItem(*product, quantity); err != nil {
			engineMetrics.IncRejection("cart", "add_item")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		engineMetrics.IncOperation("cart", "add_item")
		responses.WriteSuccessStatus(w, http.StatusCreated, appCtx.Cart.Snapshot())
	}
}

// CartUpdateItem sets the absolute quantity; zero removes the line.
func CartUpdateItem(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		appCtx.Cart.UpdateQuantity(chi.URLParam(r, "productID"), *payload.Quantity)
		engineMetrics.IncOperation("cart", "update_quantity")
		responses.WriteSuccess(w, appCtx.Cart.Snapshot())
	}
}

// CartRemoveItem deletes the line item; removing an absent id succeeds.
func CartRemoveItem(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		appCtx.Cart.RemoveItem(chi.URLParam(r, "productID"))
		engineMetrics.IncOperation("cart", "remove_item")
		responses.WriteSuccess(w, appCtx.Cart.Snapshot())
	}
}

// CartClear resets the cart, discount included.
func CartClear(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		appCtx.Cart.Clear()
		engineMetrics.IncOperation("cart", "clear")
		responses.WriteSuccess(w, appCtx.Cart.Snapshot())
	}
}

// CartApplyDiscount resolves the promo code and applies the percentage. An
// active discount is replaced, never stacked.
func CartApplyDiscount(promoSvc promos.Service, engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		var payload applyDiscountPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		code, percentage, err := promoSvc.Resolve(ctx, payload.Code)
		if err != nil {
			engineMetrics.IncRejection("cart", "apply_discount")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := appCtx.Cart.ApplyDiscount(code, percentage); err != nil {
			engineMetrics.IncRejection("cart", "apply_discount")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		engineMetrics.IncOperation("cart", "apply_discount")
		responses.WriteSuccess(w, appCtx.Cart.Summary())
	}
}

// CartRemoveDiscount clears the discount; the final price reverts to total.
func CartRemoveDiscount(engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		appCtx.Cart.RemoveDiscount()
		engineMetrics.IncOperation("cart", "remove_discount")
		responses.WriteSuccess(w, appCtx.Cart.Summary())
	}
}

func trimmedQuery(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

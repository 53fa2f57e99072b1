package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/orders"
	"github.com/grociko/grociko-backend/pkg/logger"
)

// OrdersList returns the session's order history, newest placement first.
func OrdersList(ordersSvc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		history, err := ordersSvc.List(ctx, middleware.SessionTokenFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"orders": history,
			"total":  len(history),
		})
	}
}

// OrdersGet looks an order up by id or order number.
func OrdersGet(ordersSvc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		order, err := ordersSvc.Get(ctx, middleware.SessionTokenFromContext(ctx), chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

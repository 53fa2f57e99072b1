package controllers

import (
	"net/http"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/api/validators"
	"github.com/grociko/grociko-backend/internal/checkout"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/grociko/grociko-backend/pkg/logger"
	"github.com/grociko/grociko-backend/pkg/metrics"
)

type placeOrderPayload struct {
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

// CheckoutPlaceOrder freezes the cart into an order and clears it. A failed
// placement leaves the cart untouched.
func CheckoutPlaceOrder(checkoutSvc checkout.Service, engineMetrics *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		appCtx := middleware.AppContextFromContext(ctx)
		if appCtx == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodePrecondition, "session context missing"))
			return
		}

		var payload placeOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := checkoutSvc.PlaceOrder(ctx, appCtx.Cart, checkout.PlaceOrderInput{
			SessionToken:    middleware.SessionTokenFromContext(ctx),
			DeliveryAddress: payload.DeliveryAddress,
			PaymentMethod:   payload.PaymentMethod,
		})
		if err != nil {
			engineMetrics.IncRejection("cart", "checkout")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithFields(ctx, map[string]any{
				"order_id":     order.ID.String(),
				"order_number": order.Number,
			}), "checkout.placed")
		}

		engineMetrics.IncOperation("cart", "checkout")
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grociko/grociko-backend/api/controllers"
	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/internal/catalog"
	"github.com/grociko/grociko-backend/internal/checkout"
	"github.com/grociko/grociko-backend/internal/notifications"
	"github.com/grociko/grociko-backend/internal/orders"
	"github.com/grociko/grociko-backend/internal/promos"
	"github.com/grociko/grociko-backend/internal/session"
	"github.com/grociko/grociko-backend/pkg/config"
	"github.com/grociko/grociko-backend/pkg/logger"
	"github.com/grociko/grociko-backend/pkg/metrics"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config        *config.Config
	Logger        *logger.Logger
	Registry      *session.Registry
	Catalog       catalog.Service
	Promos        promos.Service
	Orders        orders.Service
	Notifications notifications.Service
	Checkout      checkout.Service
	HTTPMetrics   *metrics.HTTPMetrics
	EngineMetrics *metrics.EngineMetrics
	Gatherer      prometheus.Gatherer
}

// New assembles the HTTP router: observability endpoints at the root,
// session-scoped application routes under /api/v1.
func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics(deps.HTTPMetrics))

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "X-Session-Token"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Session-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if deps.Config != nil {
		if len(deps.Config.CORS.AllowedOrigins) > 0 {
			corsOptions.AllowedOrigins = deps.Config.CORS.AllowedOrigins
		}
		if deps.Config.CORS.MaxAge > 0 {
			corsOptions.MaxAge = deps.Config.CORS.MaxAge
		}
	}
	r.Use(cors.Handler(corsOptions))

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(deps.Registry))

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(deps.Registry, deps.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(deps.Catalog, deps.Logger))
			r.Get("/{productID}", controllers.ProductsGet(deps.Catalog, deps.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.Logger))
			r.Delete("/", controllers.CartClear(deps.EngineMetrics, deps.Logger))
			r.Get("/summary", controllers.CartSummary(deps.Logger))
			r.Post("/items", controllers.CartAddItem(deps.Catalog, deps.EngineMetrics, deps.Logger))
			r.Get("/items/{productID}", controllers.CartItemStatus(deps.Logger))
			r.Patch("/items/{productID}", controllers.CartUpdateItem(deps.EngineMetrics, deps.Logger))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(deps.EngineMetrics, deps.Logger))
			r.Post("/discount", controllers.CartApplyDiscount(deps.Promos, deps.EngineMetrics, deps.Logger))
			r.Delete("/discount", controllers.CartRemoveDiscount(deps.EngineMetrics, deps.Logger))
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", controllers.FavoritesList(deps.Logger))
			r.Delete("/", controllers.FavoritesClear(deps.EngineMetrics, deps.Logger))
			r.Get("/recent", controllers.FavoritesRecent(deps.Logger))
			r.Get("/summary", controllers.FavoritesSummary(deps.Logger))
			r.Post("/toggle", controllers.FavoritesToggle(deps.Catalog, deps.EngineMetrics, deps.Logger))
			r.Put("/{productID}", controllers.FavoritesAdd(deps.Catalog, deps.EngineMetrics, deps.Logger))
			r.Delete("/{productID}", controllers.FavoritesRemove(deps.EngineMetrics, deps.Logger))
		})

		r.Post("/checkout", controllers.CheckoutPlaceOrder(deps.Checkout, deps.EngineMetrics, deps.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.Orders, deps.Logger))
			r.Get("/{orderID}", controllers.OrdersGet(deps.Orders, deps.Logger))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.NotificationsList(deps.Notifications, deps.Logger))
			r.Post("/read-all", controllers.NotificationsMarkAllRead(deps.Notifications, deps.Logger))
			r.Post("/{notificationID}/read", controllers.NotificationsMarkRead(deps.Notifications, deps.Logger))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionGet(deps.Logger))
			r.Delete("/", controllers.SessionLogout(deps.Registry, deps.Logger))
		})
	})

	return r
}

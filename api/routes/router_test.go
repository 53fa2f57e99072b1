package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/grociko/grociko-backend/internal/catalog"
	"github.com/grociko/grociko-backend/internal/checkout"
	"github.com/grociko/grociko-backend/internal/notifications"
	"github.com/grociko/grociko-backend/internal/orders"
	"github.com/grociko/grociko-backend/internal/promos"
	"github.com/grociko/grociko-backend/internal/session"
	"github.com/grociko/grociko-backend/pkg/logger"
	"github.com/grociko/grociko-backend/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalogSvc, err := catalog.NewService()
	require.NoError(t, err)
	promoSvc, err := promos.NewService()
	require.NoError(t, err)
	ordersSvc, err := orders.NewService()
	require.NoError(t, err)
	notificationsSvc, err := notifications.NewService()
	require.NoError(t, err)
	checkoutSvc, err := checkout.NewService(ordersSvc, "GR")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	return New(Dependencies{
		Logger:        logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Registry:      session.NewRegistry(),
		Catalog:       catalogSvc,
		Promos:        promoSvc,
		Orders:        ordersSvc,
		Notifications: notificationsSvc,
		Checkout:      checkoutSvc,
		HTTPMetrics:   metrics.NewHTTPMetrics(reg),
		EngineMetrics: metrics.NewEngineMetrics(reg),
		Gatherer:      reg,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func dataOf(t *testing.T, decoded map[string]any) map[string]any {
	t.Helper()
	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok, "expected data envelope, got %v", decoded)
	return data
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestRouter(t)

	rec, decoded := doJSON(t, handler, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", dataOf(t, decoded)["status"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", dataOf(t, decoded)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, _ := doJSON(t, handler, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	raw := httptest.NewRecorder()
	handler.ServeHTTP(raw, req)
	require.Equal(t, http.StatusOK, raw.Code)
	require.Contains(t, raw.Body.String(), "http_requests_total")
}

func TestSessionTokenMintedAndEchoed(t *testing.T) {
	handler := newTestRouter(t)

	rec, _ := doJSON(t, handler, http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Session-Token"))

	rec, _ = doJSON(t, handler, http.MethodGet, "/api/v1/cart", "session-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "session-a", rec.Header().Get("X-Session-Token"))
}

func TestProductsListAndGet(t *testing.T) {
	handler := newTestRouter(t)

	rec, decoded := doJSON(t, handler, http.MethodGet, "/api/v1/products", "session-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decoded)
	require.EqualValues(t, 8, data["total"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/products?category=Fruits", "session-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Less(t, dataOf(t, decoded)["total"].(float64), 8.0)

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/products/1", "session-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = dataOf(t, decoded)
	require.Equal(t, false, data["in_cart"])
	require.Equal(t, false, data["is_favorite"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/products/no-such", "session-a", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, decoded, "error")
}

func TestCartLifecycle(t *testing.T) {
	handler := newTestRouter(t)
	token := "cart-session"

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded := doJSON(t, handler, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decoded)
	require.EqualValues(t, 2, data["total_items"])

	rec, decoded = doJSON(t, handler, http.MethodPatch, "/api/v1/cart/items/1", token,
		map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 5, dataOf(t, decoded)["total_items"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/cart/items/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = dataOf(t, decoded)
	require.Equal(t, true, data["in_cart"])
	require.EqualValues(t, 5, data["quantity"])

	// quantity zero removes the line
	rec, decoded = doJSON(t, handler, http.MethodPatch, "/api/v1/cart/items/1", token,
		map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, dataOf(t, decoded)["total_items"])

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "2"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded = doJSON(t, handler, http.MethodDelete, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, dataOf(t, decoded)["total_items"])
}

func TestCartAddValidation(t *testing.T) {
	handler := newTestRouter(t)
	token := "cart-validation"

	rec, decoded := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"quantity": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decoded, "error")

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "no-such"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "1", "quantity": -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartDiscountFlow(t *testing.T) {
	handler := newTestRouter(t)
	token := "discount-session"

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded := doJSON(t, handler, http.MethodPost, "/api/v1/cart/discount", token,
		map[string]any{"code": "save10"})
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decoded)
	discount, ok := data["discount"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "SAVE10", discount["code"])
	require.EqualValues(t, 10, discount["percentage"])

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/cart/discount", token,
		map[string]any{"code": "BOGUS"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, decoded = doJSON(t, handler, http.MethodDelete, "/api/v1/cart/discount", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	discount, ok = dataOf(t, decoded)["discount"].(map[string]any)
	require.True(t, ok)
	require.Nil(t, discount["code"])
}

func TestFavoritesFlow(t *testing.T) {
	handler := newTestRouter(t)
	token := "favorites-session"

	rec, decoded := doJSON(t, handler, http.MethodPost, "/api/v1/favorites/toggle", token,
		map[string]any{"product_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, dataOf(t, decoded)["is_favorite"])

	rec, decoded = doJSON(t, handler, http.MethodPost, "/api/v1/favorites/toggle", token,
		map[string]any{"product_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, dataOf(t, decoded)["is_favorite"])

	rec, _ = doJSON(t, handler, http.MethodPut, "/api/v1/favorites/2", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, handler, http.MethodPut, "/api/v1/favorites/3", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 2, dataOf(t, decoded)["total_favorites"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/favorites/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 2, dataOf(t, decoded)["total"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/favorites/recent?limit=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, dataOf(t, decoded)["total_favorites"])

	rec, decoded = doJSON(t, handler, http.MethodDelete, "/api/v1/favorites/2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, dataOf(t, decoded)["total_favorites"])

	rec, decoded = doJSON(t, handler, http.MethodDelete, "/api/v1/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, dataOf(t, decoded)["total_favorites"])
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	handler := newTestRouter(t)
	token := "checkout-session"

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded := doJSON(t, handler, http.MethodPost, "/api/v1/checkout", token,
		map[string]any{"delivery_address": "12 Baker St", "payment_method": "card"})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := dataOf(t, decoded)
	number, ok := data["number"].(string)
	require.True(t, ok)
	require.NotEmpty(t, number)
	require.Equal(t, "confirmed", data["status"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, dataOf(t, decoded)["total_items"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orderList, ok := dataOf(t, decoded)["orders"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, orderList)
	first, ok := orderList[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, number, first["number"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/orders/"+number, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, number, dataOf(t, decoded)["number"])
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	handler := newTestRouter(t)

	rec, decoded := doJSON(t, handler, http.MethodPost, "/api/v1/checkout", "empty-cart",
		map[string]any{"delivery_address": "12 Baker St", "payment_method": "card"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj, ok := decoded["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestNotificationsFlow(t *testing.T) {
	handler := newTestRouter(t)
	token := "notifications-session"

	rec, decoded := doJSON(t, handler, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decoded)
	require.EqualValues(t, 6, data["total"])
	require.EqualValues(t, 5, data["unread"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/notifications?unread=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 5, dataOf(t, decoded)["total"])

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/notifications/n-001/read", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, decoded = doJSON(t, handler, http.MethodPost, "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 4, dataOf(t, decoded)["marked"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/notifications?unread=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, dataOf(t, decoded)["total"])

	// read state is per session
	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/notifications?unread=true", "other-session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 5, dataOf(t, decoded)["total"])
}

func TestSessionLogoutResetsEngines(t *testing.T) {
	handler := newTestRouter(t)
	token := "logout-session"

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
		map[string]any{"product_id": "1", "quantity": 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, handler, http.MethodPut, "/api/v1/favorites/2", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, decoded := doJSON(t, handler, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decoded)
	require.Equal(t, token, data["session_token"])
	require.EqualValues(t, 3, data["cart_items"])
	require.EqualValues(t, 1, data["favorites"])

	rec, decoded = doJSON(t, handler, http.MethodDelete, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, dataOf(t, decoded)["logged_out"])

	rec, decoded = doJSON(t, handler, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = dataOf(t, decoded)
	require.EqualValues(t, 0, data["cart_items"])
	require.EqualValues(t, 0, data["favorites"])
}

func TestUnknownBodyFieldRejected(t *testing.T) {
	handler := newTestRouter(t)

	raw := []byte(`{"product_id":"1","qty":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "strict-session")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConcurrentSessionsAreIsolated(t *testing.T) {
	handler := newTestRouter(t)

	for i := 0; i < 3; i++ {
		token := fmt.Sprintf("iso-%d", i)
		rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", token,
			map[string]any{"product_id": "1", "quantity": i + 1})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	for i := 0; i < 3; i++ {
		token := fmt.Sprintf("iso-%d", i)
		rec, decoded := doJSON(t, handler, http.MethodGet, "/api/v1/cart", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.EqualValues(t, i+1, dataOf(t, decoded)["total_items"])
	}
}

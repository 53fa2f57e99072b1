package orders

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/grociko/grociko-backend/pkg/enums"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one product line frozen into an order at checkout time.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID              uuid.UUID         `json:"id"`
	Number          string            `json:"number"`
	Status          enums.OrderStatus `json:"status"`
	StatusLabel     string            `json:"status_label"`
	Items           []Item            `json:"items"`
	TotalItems      int               `json:"total_items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Discount        decimal.Decimal   `json:"discount"`
	Total           decimal.Decimal   `json:"total"`
	DeliveryAddress string            `json:"delivery_address"`
	PaymentMethod   string            `json:"payment_method"`
	PlacedAt        time.Time         `json:"placed_at"`
}

// Service keeps per-session order history in memory, seeded with the sample
// history every fresh install shows.
type Service interface {
	List(ctx context.Context, sessionToken string) ([]Order, error)
	Get(ctx context.Context, sessionToken, orderID string) (*Order, error)
	Record(ctx context.Context, sessionToken string, order Order) error
}

type service struct {
	mu        sync.Mutex
	bySession map[string][]Order
	seed      []Order
}

// NewService builds the order history service.
func NewService() (Service, error) {
	return &service{
		bySession: map[string][]Order{},
		seed:      sampleOrders(),
	}, nil
}

// List returns placed orders newest first, followed by the seeded history.
func (s *service) List(ctx context.Context, sessionToken string) ([]Order, error) {
	token, err := normalizeToken(sessionToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placed := s.bySession[token]
	result := make([]Order, 0, len(placed)+len(s.seed))
	for i := len(placed) - 1; i >= 0; i-- {
		result = append(result, placed[i])
	}
	result = append(result, s.seed...)
	return result, nil
}

// Get looks an order up by id or order number.
func (s *service) Get(ctx context.Context, sessionToken, orderID string) (*Order, error) {
	orders, err := s.List(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	needle := strings.TrimSpace(orderID)
	for _, order := range orders {
		if order.ID.String() == needle || order.Number == needle {
			found := order
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Record appends a placed order to the session's history.
func (s *service) Record(ctx context.Context, sessionToken string, order Order) error {
	token, err := normalizeToken(sessionToken)
	if err != nil {
		return err
	}
	if order.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySession[token] = append(s.bySession[token], order)
	return nil
}

func normalizeToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session token is required")
	}
	return token, nil
}

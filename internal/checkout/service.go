package checkout

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/grociko/grociko-backend/internal/cart"
	"github.com/grociko/grociko-backend/internal/orders"
	"github.com/grociko/grociko-backend/pkg/enums"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// PlaceOrderInput is the checkout payload after the client confirms.
type PlaceOrderInput struct {
	SessionToken    string
	DeliveryAddress string
	PaymentMethod   string
}

// Service turns a cart snapshot into an order and clears the cart. There is
// no payment capture; placement is simulated end to end.
type Service interface {
	PlaceOrder(ctx context.Context, engine *cart.Engine, input PlaceOrderInput) (*orders.Order, error)
}

type service struct {
	orders            orders.Service
	orderNumberPrefix string
	now               func() time.Time
}

// NewService wires checkout dependencies.
func NewService(ordersSvc orders.Service, orderNumberPrefix string) (Service, error) {
	if ordersSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders service required")
	}
	if strings.TrimSpace(orderNumberPrefix) == "" {
		orderNumberPrefix = "GR"
	}
	return &service{
		orders:            ordersSvc,
		orderNumberPrefix: orderNumberPrefix,
		now:               time.Now,
	}, nil
}

// PlaceOrder validates the input and the cart snapshot, records the order
// and clears the cart. Validation problems are aggregated so the client sees
// everything wrong at once.
func (s *service) PlaceOrder(ctx context.Context, engine *cart.Engine, input PlaceOrderInput) (*orders.Order, error) {
	if engine == nil {
		return nil, pkgerrors.New(pkgerrors.CodePrecondition, "cart engine required")
	}
	token := strings.TrimSpace(input.SessionToken)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session token is required")
	}

	snapshot := engine.Snapshot()

	var problems error
	if len(snapshot.Items) == 0 {
		problems = multierr.Append(problems, fmt.Errorf("cart is empty"))
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		problems = multierr.Append(problems, fmt.Errorf("delivery address is required"))
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		problems = multierr.Append(problems, fmt.Errorf("payment method is required"))
	}
	if snapshot.FinalPrice.IsNegative() {
		problems = multierr.Append(problems, fmt.Errorf("final price cannot be negative"))
	}
	if problems != nil {
		details := make([]string, 0)
		for _, err := range multierr.Errors(problems) {
			details = append(details, err.Error())
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, problems, "cannot place order").
			WithDetails(map[string]any{"problems": details})
	}

	items := make([]orders.Item, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, orders.Item{
			ProductID: line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			LineTotal: line.Price.Mul(decimalFromInt(line.Quantity)),
		})
	}

	id := uuid.New()
	order := orders.Order{
		ID:              id,
		Number:          s.orderNumber(id),
		Status:          enums.OrderStatusConfirmed,
		StatusLabel:     enums.OrderStatusConfirmed.Label(),
		Items:           items,
		TotalItems:      snapshot.TotalItems,
		Subtotal:        snapshot.TotalPrice,
		Discount:        snapshot.Discount.Amount,
		Total:           snapshot.FinalPrice,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		PlacedAt:        s.now().UTC(),
	}

	if err := s.orders.Record(ctx, token, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record order")
	}

	engine.Clear()
	return &order, nil
}

// orderNumber derives a short human-readable number from the order id.
func (s *service) orderNumber(id uuid.UUID) string {
	raw := binary.BigEndian.Uint32(id[0:4]) % 100000
	return fmt.Sprintf("%s%05d", s.orderNumberPrefix, raw)
}

func decimalFromInt(value int) decimal.Decimal {
	return decimal.NewFromInt(int64(value))
}

package cart

import (
	"strings"
	"sync"

	"github.com/grociko/grociko-backend/internal/catalog"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart. Quantity is always positive; a
// line that would drop to zero is removed instead.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Discount is the single active percentage discount. Code nil, percentage 0
// and amount 0 always hold together.
type Discount struct {
	Code       *string         `json:"code"`
	Percentage int             `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// State is one immutable cart snapshot. TotalItems, TotalPrice, the discount
// amount and FinalPrice are derived from Items and the discount percentage,
// never stored independently.
type State struct {
	Items      []LineItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   Discount        `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// Summary is the read model every screen consumes: badge counts, price
// breakdowns and checkout totals.
type Summary struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   Discount        `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Savings    decimal.Decimal `json:"savings"`
}

var oneHundred = decimal.NewFromInt(100)

func initialState() State {
	return State{
		Items:      []LineItem{},
		TotalPrice: decimal.Zero,
		Discount:   Discount{Amount: decimal.Zero},
		FinalPrice: decimal.Zero,
	}
}

// recompute derives every dependent field from the item collection and the
// sticky discount percentage. Every mutation funnels through here; totals are
// never patched incrementally.
func recompute(items []LineItem, code *string, percentage int) State {
	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	amount := decimal.Zero
	if code == nil {
		percentage = 0
	} else {
		amount = totalPrice.Mul(decimal.NewFromInt(int64(percentage))).Div(oneHundred).Round(2)
	}

	return State{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		Discount: Discount{
			Code:       code,
			Percentage: percentage,
			Amount:     amount,
		},
		FinalPrice: totalPrice.Sub(amount),
	}
}

// removeLine drops the line with the given product id, keeping insertion
// order. RemoveItem and the zero-quantity path of UpdateQuantity share it so
// the two operations cannot drift apart.
func removeLine(items []LineItem, productID string) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID == productID {
			continue
		}
		next = append(next, item)
	}
	return next
}

// Engine owns the cart state machine. Mutations replace the whole snapshot
// under the write lock; readers copy the current snapshot and can never see a
// half-applied transition.
type Engine struct {
	mu    sync.RWMutex
	state State
}

// NewEngine returns an empty cart.
func NewEngine() *Engine {
	return &Engine{state: initialState()}
}

// AddItem appends the product with the given quantity, or bumps the quantity
// of the existing line. Non-positive quantities are rejected rather than
// aliased to removal; only UpdateQuantity carries that meaning.
func (e *Engine) AddItem(product catalog.Product, quantity int) error {
	if strings.TrimSpace(product.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if product.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
			WithDetails(map[string]any{"quantity": quantity})
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]LineItem, len(e.state.Items))
	copy(items, e.state.Items)

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, LineItem{Product: product, Quantity: quantity})
	}

	e.state = recompute(items, e.state.Discount.Code, e.state.Discount.Percentage)
	return nil
}

// RemoveItem deletes the line with the given product id. Removing an absent
// id is a no-op, not an error.
func (e *Engine) RemoveItem(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := removeLine(e.state.Items, productID)
	e.state = recompute(items, e.state.Discount.Code, e.state.Discount.Percentage)
}

// UpdateQuantity sets the absolute quantity for the line. A quantity of zero
// or less removes the line, exactly as RemoveItem would.
func (e *Engine) UpdateQuantity(productID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var items []LineItem
	if quantity <= 0 {
		items = removeLine(e.state.Items, productID)
	} else {
		items = make([]LineItem, len(e.state.Items))
		copy(items, e.state.Items)
		for i := range items {
			if items[i].ID == productID {
				items[i].Quantity = quantity
				break
			}
		}
	}

	e.state = recompute(items, e.state.Discount.Code, e.state.Discount.Percentage)
}

// Clear resets the cart to its initial state, discount included.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = initialState()
}

// ApplyDiscount replaces any active discount with the given code and
// percentage. Discounts never stack. The code-to-percentage resolution is the
// caller's concern; the engine only enforces the percentage range.
func (e *Engine) ApplyDiscount(code string, percentage int) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount code is required")
	}
	if percentage < 0 || percentage > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percentage must be between 0 and 100").
			WithDetails(map[string]any{"percentage": percentage})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = recompute(e.state.Items, &code, percentage)
	return nil
}

// RemoveDiscount resets the discount; the final price reverts to the total.
func (e *Engine) RemoveDiscount() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = recompute(e.state.Items, nil, 0)
}

// Snapshot returns a copy of the current state safe to read without locking.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyState(e.state)
}

// ItemQuantity reports the quantity for the product, or zero if absent.
func (e *Engine) ItemQuantity(productID string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, item := range e.state.Items {
		if item.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Contains reports whether the product has a line in the cart.
func (e *Engine) Contains(productID string) bool {
	return e.ItemQuantity(productID) > 0
}

// Summary returns the derived totals the UI renders.
func (e *Engine) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Summary{
		TotalItems: e.state.TotalItems,
		TotalPrice: e.state.TotalPrice,
		Discount:   e.state.Discount,
		FinalPrice: e.state.FinalPrice,
		Savings:    e.state.Discount.Amount,
	}
}

func copyState(s State) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	out := s
	out.Items = items
	if s.Discount.Code != nil {
		code := *s.Discount.Code
		out.Discount.Code = &code
	}
	return out
}

package promos

import (
	"context"
	"strings"

	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
)

// Service resolves textual discount codes to percentages. The cart engine
// trusts whatever percentage comes out of here; this is the policy boundary
// where code authenticity lives.
type Service interface {
	Resolve(ctx context.Context, code string) (string, int, error)
}

type service struct {
	codes map[string]int
}

// defaultCodes is the promotional table the storefront ships with.
var defaultCodes = map[string]int{
	"SAVE10":    10,
	"WELCOME20": 20,
	"FRESH15":   15,
}

// NewService builds the resolver over the default promo table.
func NewService() (Service, error) {
	return newServiceWith(defaultCodes)
}

func newServiceWith(codes map[string]int) (Service, error) {
	normalized := make(map[string]int, len(codes))
	for code, percentage := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "promo code cannot be blank")
		}
		if percentage < 0 || percentage > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "promo percentage must be between 0 and 100")
		}
		normalized[code] = percentage
	}
	return &service{codes: normalized}, nil
}

// Resolve returns the canonical code and its percentage. Unknown codes fail
// with a not-found error; lookup is case-insensitive.
func (s *service) Resolve(ctx context.Context, code string) (string, int, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if canonical == "" {
		return "", 0, pkgerrors.New(pkgerrors.CodeValidation, "discount code is required")
	}
	percentage, ok := s.codes[canonical]
	if !ok {
		return "", 0, pkgerrors.New(pkgerrors.CodeNotFound, "discount code is not valid")
	}
	return canonical, percentage, nil
}

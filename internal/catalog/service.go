package catalog

import (
	"context"
	"strings"

	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
)

// Service exposes read-only catalog lookups.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Product, error)
	Get(ctx context.Context, productID string) (*Product, error)
}

// ListParams narrows the catalog listing.
type ListParams struct {
	Category string
	Query    string
	Featured bool
}

type service struct {
	products []Product
	byID     map[string]int
}

// NewService builds a catalog service over the seeded product table.
func NewService() (Service, error) {
	return newServiceWith(sampleProducts)
}

func newServiceWith(products []Product) (Service, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog product missing id")
		}
		if p.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog product price cannot be negative")
		}
		if _, exists := byID[p.ID]; exists {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate catalog product id")
		}
		byID[p.ID] = i
	}
	return &service{products: products, byID: byID}, nil
}

func (s *service) List(ctx context.Context, params ListParams) ([]Product, error) {
	category := strings.ToLower(strings.TrimSpace(params.Category))
	query := strings.ToLower(strings.TrimSpace(params.Query))

	results := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if params.Featured && !p.Featured {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

func (s *service) Get(ctx context.Context, productID string) (*Product, error) {
	idx, ok := s.byID[strings.TrimSpace(productID)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	p := s.products[idx]
	return &p, nil
}

func matchesQuery(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Brand), query)
}

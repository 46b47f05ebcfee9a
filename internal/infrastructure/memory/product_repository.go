package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "catalog/backend/internal/domain/product"
)

// ProductRepository keeps products in process memory. It is the
// reference store implementation: tests run against it, and the server
// falls back to it when no database is configured. Like the PostgreSQL
// store it refuses a second active record with the same code.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewProductRepository constructs an empty in-memory store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create appends a new record.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.Active && r.activeCodeTaken(product.Code, product.ID) {
		return domain.ErrDuplicateCode
	}
	r.products = append(r.products, clone(product))
	return nil
}

// GetByID fetches a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByCode fetches the first match for a business code: the active
// record when one exists, otherwise the most recently created match.
func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *domain.Product
	for _, p := range r.products {
		if p.Code != code {
			continue
		}
		if p.Active {
			return clone(p), nil
		}
		match = p
	}
	if match == nil {
		return nil, domain.ErrNotFound
	}
	return clone(match), nil
}

// List returns every record sorted by name.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, clone(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

// Update overwrites the record with the same id.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.Active && r.activeCodeTaken(product.Code, product.ID) {
		return domain.ErrDuplicateCode
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = clone(product)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes a record entirely. The lifecycle service never calls
// this; logical deletes go through Update.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepository) activeCodeTaken(code, excludeID string) bool {
	for _, p := range r.products {
		if p.Active && p.Code == code && p.ID != excludeID {
			return true
		}
	}
	return false
}

func clone(p *domain.Product) *domain.Product {
	c := *p
	return &c
}

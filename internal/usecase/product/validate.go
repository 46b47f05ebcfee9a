package product

import (
	domain "catalog/backend/internal/domain/product"
)

// Validate enforces the invariants every stored product must satisfy.
// Rules run in order and the first failure is reported. Description and
// the lifecycle flag are intentionally unchecked.
func Validate(p *domain.Product) error {
	if p.Code == "" {
		return &domain.ValidationError{Reason: "product code is required"}
	}
	if p.Name == "" {
		return &domain.ValidationError{Reason: "product name is required"}
	}
	if !p.Price.IsPositive() {
		return &domain.ValidationError{Reason: "price must be greater than zero"}
	}
	return nil
}

package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound indicates a product could not be located.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateCode signals that storage rejected a second active
	// record with the same business code.
	ErrDuplicateCode = errors.New("product with code already exists")
)

// ValidationError reports a caller-fixable problem with a submitted
// product.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Product captures the state of an individual catalog entry. Code is
// the caller-supplied business key used for duplicate detection; ID is
// assigned by the system and never changes. An inactive product is
// logically deleted but stays in storage.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Merge copies the display fields from a newer submission onto the
// product, keeping its identity, code and lifecycle flag.
func (p *Product) Merge(other *Product, now time.Time) {
	p.Name = other.Name
	p.Description = other.Description
	p.Price = other.Price
	p.UpdatedAt = now
}

// Overwrite replaces every caller-editable field with the values from
// other.
func (p *Product) Overwrite(other *Product, now time.Time) {
	p.Code = other.Code
	p.Name = other.Name
	p.Description = other.Description
	p.Price = other.Price
	p.Active = other.Active
	p.UpdatedAt = now
}

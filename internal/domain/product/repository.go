package product

import "context"

// Repository defines persistence behaviours for products.
//
// GetByCode resolves the "first match" for a business code as follows:
// an active record wins over inactive ones, and among records with the
// same lifecycle state the most recently created wins. Both store
// implementations honor this ordering.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByCode(ctx context.Context, code string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}

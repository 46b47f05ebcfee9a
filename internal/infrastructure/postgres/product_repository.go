package postgres

import (
	"context"
	"errors"

	domain "catalog/backend/internal/domain/product"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository persists products in PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository constructs a repository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product. A partial unique index on active codes
// turns a racing duplicate insert into ErrDuplicateCode.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
INSERT INTO products (id, code, name, description, price, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Code,
		product.Name,
		product.Description,
		product.Price,
		product.Active,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

// GetByID fetches a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
SELECT id, code, name, description, price, active, created_at, updated_at
FROM products WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetByCode fetches the first match for a business code: the active
// record when one exists, otherwise the most recently created match.
func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	const query = `
SELECT id, code, name, description, price, active, created_at, updated_at
FROM products WHERE code = $1
ORDER BY active DESC, created_at DESC
LIMIT 1
`
	row := r.pool.QueryRow(ctx, query, code)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// List returns all products sorted by name.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	const query = `
SELECT id, code, name, description, price, active, created_at, updated_at
FROM products
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Update writes product updates to the database.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
UPDATE products
SET code = $2,
    name = $3,
    description = $4,
    price = $5,
    active = $6,
    updated_at = $7
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Code,
		product.Name,
		product.Description,
		product.Price,
		product.Active,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product by id. The lifecycle service never calls
// this; logical deletes go through Update.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package product

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "catalog/backend/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service encapsulates the product lifecycle use cases.
type Service struct {
	repo    domain.Repository
	newID   func() string
	nowFunc func() time.Time
}

// NewService constructs a product service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		newID:   uuid.NewString,
		nowFunc: time.Now,
	}
}

// Input carries the untrusted payload for create and update requests.
type Input struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

// ConvertAndSanitize maps an untrusted payload onto a product value,
// sanitizes its text fields and validates the result. It does not touch
// storage and assigns no identity.
func (s *Service) ConvertAndSanitize(input Input) (*domain.Product, error) {
	p := &domain.Product{
		Code:        Sanitize(strings.ToUpper(strings.TrimSpace(input.Code))),
		Name:        Sanitize(strings.TrimSpace(input.Name)),
		Description: Sanitize(strings.TrimSpace(input.Description)),
		Price:       input.Price,
		Active:      input.Active,
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create persists the product. When an active record already carries
// the same code the submission is treated as an update of that record:
// its display fields are replaced, its id is kept and no new record is
// inserted. An inactive record never blocks a fresh insert with its
// code.
func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.GetByCode(ctx, p.Code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.nowFunc().UTC()
	if existing != nil && existing.Active {
		existing.Merge(p, now)
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p.ID = s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get fetches a product by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves every record, including logically deleted ones.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update overwrites the record identified by p.ID. It reports false
// without touching storage when the record is missing or when a
// different active record already holds the same code; inactive records
// never block code reuse.
func (s *Service) Update(ctx context.Context, p *domain.Product) (bool, error) {
	conflicting, err := s.repo.GetByCode(ctx, p.Code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	if conflicting != nil && conflicting.ID != p.ID && conflicting.Active {
		return false, nil
	}

	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.Overwrite(p, s.nowFunc().UTC())
	if err := s.repo.Update(ctx, existing); err != nil {
		return false, err
	}
	return true, nil
}

// Delete marks the record inactive. The record and its code stay in
// storage, so a later create with the same code starts a fresh record.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.Active = false
	existing.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Update(ctx, existing); err != nil {
		return false, err
	}
	return true, nil
}

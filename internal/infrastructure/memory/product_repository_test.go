package memory_test

import (
	"context"
	"testing"
	"time"

	domain "catalog/backend/internal/domain/product"
	"catalog/backend/internal/infrastructure/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(id, code, name string, active bool, createdAt time.Time) *domain.Product {
	return &domain.Product{
		ID:        id,
		Code:      code,
		Name:      name,
		Price:     decimal.NewFromInt(10),
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("CreateThenGetByID", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Widget", true, base)))

		got, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "P1", got.Code)
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		repo := memory.NewProductRepository()
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateThenGetByIDObservesWrite", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Widget", true, base)))

		updated := newProduct("a", "P1", "Gadget", true, base)
		require.NoError(t, repo.Update(ctx, updated))

		got, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Gadget", got.Name)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		repo := memory.NewProductRepository()
		err := repo.Update(ctx, newProduct("missing", "P1", "Widget", true, base))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("GetByCodePrefersActiveRecord", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Old", false, base)))
		require.NoError(t, repo.Create(ctx, newProduct("b", "P1", "Current", true, base.Add(time.Hour))))

		got, err := repo.GetByCode(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, "b", got.ID)
	})

	t.Run("GetByCodeFallsBackToNewestInactive", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Older", false, base)))
		require.NoError(t, repo.Create(ctx, newProduct("b", "P1", "Newer", false, base.Add(time.Hour))))

		got, err := repo.GetByCode(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, "b", got.ID)
	})

	t.Run("GetByCodeMissing", func(t *testing.T) {
		repo := memory.NewProductRepository()
		_, err := repo.GetByCode(ctx, "P1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("RejectsSecondActiveRecordWithSameCode", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Widget", true, base)))

		err := repo.Create(ctx, newProduct("b", "P1", "Clone", true, base))
		assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	})

	t.Run("AllowsInactiveDuplicateCode", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Old", false, base)))
		require.NoError(t, repo.Create(ctx, newProduct("b", "P1", "New", true, base)))
	})

	t.Run("ListSortsByName", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Zebra", true, base)))
		require.NoError(t, repo.Create(ctx, newProduct("b", "P2", "Apple", true, base)))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Apple", all[0].Name)
		assert.Equal(t, "Zebra", all[1].Name)
	})

	t.Run("DeleteRemovesRecord", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Widget", true, base)))

		require.NoError(t, repo.Delete(ctx, "a"))
		_, err := repo.GetByID(ctx, "a")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrNotFound)
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, repo.Create(ctx, newProduct("a", "P1", "Widget", true, base)))

		got, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		got.Name = "Mutated"

		again, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Widget", again.Name)
	})
}

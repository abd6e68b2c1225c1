package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
)

func mustProduct(t *testing.T, name string, price, quantity float64) *domain.StandardProduct {
	t.Helper()
	p, err := domain.NewProduct(name, price, quantity)
	require.NoError(t, err)
	return p
}

func TestMembership(t *testing.T) {
	p1 := mustProduct(t, "MacBook Air M2", 1450, 100)
	p2 := mustProduct(t, "Bose QuietComfort Earbuds", 250, 500)

	s := New(p1)
	s.AddProduct(p2)
	assert.Len(t, s.GetAllProducts(), 2)

	s.RemoveProduct(p1)
	active := s.GetAllProducts()
	require.Len(t, active, 1)
	assert.Equal(t, "Bose QuietComfort Earbuds", active[0].Name())

	// removing an absent product is a no-op
	s.RemoveProduct(p1)
	assert.Len(t, s.GetAllProducts(), 1)
}

func TestGetAllProductsFiltersAndPreservesOrder(t *testing.T) {
	p1 := mustProduct(t, "First", 10, 5)
	p2 := mustProduct(t, "Second", 20, 5)
	p3 := mustProduct(t, "Third", 30, 5)
	s := New(p1, p2, p3)

	p2.Deactivate()

	active := s.GetAllProducts()
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Name())
	assert.Equal(t, "Third", active[1].Name())

	p2.Activate()
	active = s.GetAllProducts()
	require.Len(t, active, 3)
	assert.Equal(t, "Second", active[1].Name())
}

func TestGetTotalQuantity(t *testing.T) {
	t.Run("sums active and inactive stock", func(t *testing.T) {
		p1 := mustProduct(t, "First", 10, 100)
		p2 := mustProduct(t, "Second", 20, 250)
		p2.Deactivate()

		s := New(p1, p2)
		assert.Equal(t, 350.0, s.GetTotalQuantity())
	})

	t.Run("unlimited products contribute the sentinel zero", func(t *testing.T) {
		p1 := mustProduct(t, "First", 10, 100)
		license, err := domain.NewUnlimitedProduct("Windows License", 125)
		require.NoError(t, err)

		s := New(p1, license)
		assert.Equal(t, 100.0, s.GetTotalQuantity())
	})

	t.Run("empty store", func(t *testing.T) {
		assert.Equal(t, 0.0, New().GetTotalQuantity())
	})
}

func TestOrder(t *testing.T) {
	t.Run("totals successful lines in order", func(t *testing.T) {
		p1 := mustProduct(t, "MacBook Air M2", 1450, 100)
		p2 := mustProduct(t, "Bose QuietComfort Earbuds", 250, 500)
		s := New(p1, p2)

		total, results := s.Order([]Line{
			{Product: p1, Quantity: 1},
			{Product: p2, Quantity: 2},
		})

		assert.InDelta(t, 1950, total, 1e-9)
		require.Len(t, results, 2)
		assert.NoError(t, results[0].Err)
		assert.InDelta(t, 1450, results[0].Price, 1e-9)
		assert.NoError(t, results[1].Err)
		assert.InDelta(t, 500, results[1].Price, 1e-9)
		assert.Equal(t, 99.0, p1.Quantity())
		assert.Equal(t, 498.0, p2.Quantity())
	})

	t.Run("failed line contributes zero and does not abort", func(t *testing.T) {
		p1 := mustProduct(t, "First", 100, 5)
		p2 := mustProduct(t, "Second", 250, 500)
		s := New(p1, p2)

		total, results := s.Order([]Line{
			{Product: p1, Quantity: -1},
			{Product: p2, Quantity: 2},
		})

		assert.InDelta(t, 500, total, 1e-9)
		require.Len(t, results, 2)
		require.Error(t, results[0].Err)
		assert.True(t, domain.IsInvalidArgumentError(results[0].Err))
		assert.Equal(t, 0.0, results[0].Price)
		assert.NoError(t, results[1].Err)
		assert.Equal(t, 5.0, p1.Quantity())
	})

	t.Run("every error kind is contained", func(t *testing.T) {
		inactive := mustProduct(t, "Inactive", 10, 5)
		inactive.Deactivate()
		low := mustProduct(t, "Low Stock", 10, 1)
		capped, err := domain.NewLimitedProduct("Shipping", 10, 250, 1)
		require.NoError(t, err)
		ok := mustProduct(t, "Fine", 10, 10)

		s := New(inactive, low, capped, ok)
		total, results := s.Order([]Line{
			{Product: inactive, Quantity: 1},
			{Product: low, Quantity: 5},
			{Product: capped, Quantity: 2},
			{Product: ok, Quantity: 2},
		})

		assert.InDelta(t, 20, total, 1e-9)
		require.Len(t, results, 4)
		assert.True(t, domain.IsInactiveProductError(results[0].Err))
		assert.True(t, domain.IsInsufficientStockError(results[1].Err))
		assert.True(t, domain.IsOrderLimitExceededError(results[2].Err))
		assert.NoError(t, results[3].Err)
	})

	t.Run("same product across lines depletes sequentially", func(t *testing.T) {
		p := mustProduct(t, "Scarce", 100, 3)
		s := New(p)

		total, results := s.Order([]Line{
			{Product: p, Quantity: 2},
			{Product: p, Quantity: 2},
			{Product: p, Quantity: 1},
		})

		// second line exceeds the remaining single unit, third line drains it
		assert.InDelta(t, 300, total, 1e-9)
		assert.NoError(t, results[0].Err)
		assert.True(t, domain.IsInsufficientStockError(results[1].Err))
		assert.NoError(t, results[2].Err)
		assert.Equal(t, 0.0, p.Quantity())
		assert.False(t, p.IsActive())
	})

	t.Run("empty order", func(t *testing.T) {
		s := New()
		total, results := s.Order(nil)
		assert.Equal(t, 0.0, total)
		assert.Empty(t, results)
	})
}

func TestOrderEndToEnd(t *testing.T) {
	p := mustProduct(t, "Bose QuietComfort Earbuds", 250, 500)
	s := New(p)

	total, results := s.Order([]Line{{Product: p, Quantity: 50}})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.InDelta(t, 12500.0, total, 1e-9)
	assert.Equal(t, 450.0, p.Quantity())
}

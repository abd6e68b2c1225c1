package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentDiscountValidation(t *testing.T) {
	tests := []struct {
		name        string
		percent     float64
		expectError bool
	}{
		{name: "zero percent", percent: 0},
		{name: "mid range", percent: 30},
		{name: "full discount", percent: 100},
		{name: "negative percent", percent: -1, expectError: true},
		{name: "above one hundred", percent: 101, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPercentDiscount("promo", tt.percent)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsInvalidArgumentError(err))
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "promo", p.Name())
		})
	}
}

func TestComputePrice(t *testing.T) {
	thirtyOff, err := NewPercentDiscount("30% off!", 30)
	require.NoError(t, err)

	tests := []struct {
		name      string
		promo     Promotion
		unitPrice float64
		quantity  float64
		expected  float64
	}{
		{name: "percent discount", promo: thirtyOff, unitPrice: 100, quantity: 2, expected: 140},
		{name: "percent discount single unit", promo: thirtyOff, unitPrice: 250, quantity: 1, expected: 175},
		{name: "second half price even quantity", promo: NewSecondHalfPrice("Second Half price!"), unitPrice: 100, quantity: 4, expected: 300},
		{name: "second half price odd remainder", promo: NewSecondHalfPrice("Second Half price!"), unitPrice: 100, quantity: 3, expected: 250},
		{name: "second half price single unit", promo: NewSecondHalfPrice("Second Half price!"), unitPrice: 100, quantity: 1, expected: 100},
		{name: "third one free exact triple", promo: NewThirdOneFree("Third One Free!"), unitPrice: 90, quantity: 3, expected: 180},
		{name: "third one free below threshold", promo: NewThirdOneFree("Third One Free!"), unitPrice: 90, quantity: 2, expected: 180},
		{name: "third one free two triples", promo: NewThirdOneFree("Third One Free!"), unitPrice: 90, quantity: 6, expected: 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.promo.ComputePrice(tt.unitPrice, tt.quantity), 1e-9)
		})
	}
}

func TestPromotionIsPure(t *testing.T) {
	promo := NewThirdOneFree("Third One Free!")
	first := promo.ComputePrice(90, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, promo.ComputePrice(90, 3))
	}
}

func TestPromotionSharedAcrossProducts(t *testing.T) {
	promo, err := NewPercentDiscount("30% off!", 30)
	require.NoError(t, err)

	p1, err := NewProduct("First", 100, 10)
	require.NoError(t, err)
	p2, err := NewProduct("Second", 200, 10)
	require.NoError(t, err)

	p1.SetPromotion(promo)
	p2.SetPromotion(promo)

	total1, err := p1.Buy(2)
	require.NoError(t, err)
	total2, err := p2.Buy(2)
	require.NoError(t, err)

	assert.InDelta(t, 140, total1, 1e-9)
	assert.InDelta(t, 280, total2, 1e-9)
}

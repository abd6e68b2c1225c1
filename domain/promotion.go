package domain

import "math"

// Promotion is a pricing strategy that turns a unit price and a purchase
// quantity into a discounted total. Implementations are immutable and
// stateless, so a single Promotion may be attached to any number of products.
type Promotion interface {
	Name() string
	ComputePrice(unitPrice, quantity float64) float64
}

// PercentDiscount takes a flat percentage off the undiscounted total.
type PercentDiscount struct {
	name    string
	percent float64
}

// NewPercentDiscount constructs a PercentDiscount. Percent must lie in [0, 100].
func NewPercentDiscount(name string, percent float64) (*PercentDiscount, error) {
	if percent < 0 || percent > 100 {
		return nil, NewInvalidArgumentError("percent", "must be between 0 and 100", percent)
	}
	return &PercentDiscount{name: name, percent: percent}, nil
}

// Name returns the display name of the promotion
func (p *PercentDiscount) Name() string { return p.name }

// ComputePrice applies the percentage discount to the full total
func (p *PercentDiscount) ComputePrice(unitPrice, quantity float64) float64 {
	return unitPrice * quantity * (1 - p.percent/100)
}

// SecondHalfPrice charges every second unit at half price: for each full pair
// one unit is full price and one is half price, any odd remainder is full price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice constructs a SecondHalfPrice promotion
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

// Name returns the display name of the promotion
func (p *SecondHalfPrice) Name() string { return p.name }

// ComputePrice prices floor(quantity/2) units at half price and the rest at full price
func (p *SecondHalfPrice) ComputePrice(unitPrice, quantity float64) float64 {
	discounted := math.Floor(quantity / 2)
	return unitPrice*0.5*discounted + unitPrice*(quantity-discounted)
}

// ThirdOneFree makes every third unit free.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree constructs a ThirdOneFree promotion
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

// Name returns the display name of the promotion
func (p *ThirdOneFree) Name() string { return p.name }

// ComputePrice charges for quantity minus floor(quantity/3) units
func (p *ThirdOneFree) ComputePrice(unitPrice, quantity float64) float64 {
	free := math.Floor(quantity / 3)
	return unitPrice * (quantity - free)
}

// compile-time assertions that all promotion variants implement Promotion
var (
	_ Promotion = (*PercentDiscount)(nil)
	_ Promotion = (*SecondHalfPrice)(nil)
	_ Promotion = (*ThirdOneFree)(nil)
)

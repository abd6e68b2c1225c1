// Package domain defines core business types and interfaces.
package domain

import "fmt"

// Product is the purchase/display capability shared by all catalog entries.
// The variant set is closed: StandardProduct tracks stock normally,
// UnlimitedProduct has no stock to track, and LimitedProduct caps how much
// can be bought in a single order line.
type Product interface {
	Name() string
	Price() float64

	// Quantity returns current stock. UnlimitedProduct returns the sentinel 0,
	// which means "unconstrained", not "sold out"; display logic special-cases it.
	Quantity() float64
	SetQuantity(quantity float64) error

	IsActive() bool
	Activate()
	Deactivate()

	SetPromotion(p Promotion)
	Promotion() Promotion

	// Show returns the human-readable catalog line for the product.
	Show() string

	// Buy purchases the given quantity, mutates stock where tracked, and
	// returns the total price for the line.
	Buy(quantity float64) (float64, error)
}

// StandardProduct is a catalog entry with normally tracked stock.
type StandardProduct struct {
	name      string
	price     float64
	quantity  float64
	active    bool
	promotion Promotion
}

// NewProduct constructs a StandardProduct. Name must be non-empty, price and
// quantity must be non-negative. The product starts active.
func NewProduct(name string, price, quantity float64) (*StandardProduct, error) {
	if name == "" {
		return nil, NewInvalidArgumentError("name", "cannot be empty", name)
	}
	if price < 0 {
		return nil, NewInvalidArgumentError("price", "cannot be negative", price)
	}
	if quantity < 0 {
		return nil, NewInvalidArgumentError("quantity", "cannot be negative", quantity)
	}
	return &StandardProduct{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   true,
	}, nil
}

// Name returns the product's identity label
func (p *StandardProduct) Name() string { return p.name }

// Price returns the per-unit price
func (p *StandardProduct) Price() float64 { return p.price }

// Quantity returns the current stock level
func (p *StandardProduct) Quantity() float64 { return p.quantity }

// SetQuantity replaces the stock level. Setting 0 deactivates the product,
// setting a positive quantity reactivates it.
func (p *StandardProduct) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return NewInvalidArgumentError("quantity", "cannot be negative", quantity)
	}
	p.quantity = quantity
	p.active = quantity > 0
	return nil
}

// IsActive reports whether the product is eligible for purchase
func (p *StandardProduct) IsActive() bool { return p.active }

// Activate marks the product purchasable
func (p *StandardProduct) Activate() { p.active = true }

// Deactivate marks the product not purchasable
func (p *StandardProduct) Deactivate() { p.active = false }

// SetPromotion attaches a promotion, replacing any existing one
func (p *StandardProduct) SetPromotion(promo Promotion) { p.promotion = promo }

// Promotion returns the attached promotion, or nil
func (p *StandardProduct) Promotion() Promotion { return p.promotion }

// Show returns the catalog line, e.g.
// "Bose QuietComfort Earbuds, Price: 250, Quantity: 500, Promotion: None"
func (p *StandardProduct) Show() string {
	return fmt.Sprintf("%s, Price: %g, Quantity: %d, Promotion: %s",
		p.name, p.price, int(p.quantity), promotionName(p.promotion))
}

// Buy purchases quantity units. Preconditions are checked in order: the
// product must be active, the quantity positive, and the stock sufficient.
// The attached promotion, if any, prices the line; stock is decremented and
// the product deactivates when it hits zero.
func (p *StandardProduct) Buy(quantity float64) (float64, error) {
	if !p.active {
		return 0, NewInactiveProductError(p.name)
	}
	if quantity <= 0 {
		return 0, NewInvalidArgumentError("quantity", "must be positive", quantity)
	}
	if quantity > p.quantity {
		return 0, NewInsufficientStockError(p.name, quantity, p.quantity)
	}

	price := p.price * quantity
	if p.promotion != nil {
		price = p.promotion.ComputePrice(p.price, quantity)
	}

	p.quantity -= quantity
	p.active = p.quantity > 0
	return price, nil
}

// UnlimitedProduct is a catalog entry with no stock constraint, such as a
// software license. It carries no quantity field at all.
type UnlimitedProduct struct {
	name      string
	price     float64
	active    bool
	promotion Promotion
}

// NewUnlimitedProduct constructs an UnlimitedProduct. Name must be non-empty
// and price non-negative.
func NewUnlimitedProduct(name string, price float64) (*UnlimitedProduct, error) {
	if name == "" {
		return nil, NewInvalidArgumentError("name", "cannot be empty", name)
	}
	if price < 0 {
		return nil, NewInvalidArgumentError("price", "cannot be negative", price)
	}
	return &UnlimitedProduct{name: name, price: price, active: true}, nil
}

// Name returns the product's identity label
func (p *UnlimitedProduct) Name() string { return p.name }

// Price returns the per-unit price
func (p *UnlimitedProduct) Price() float64 { return p.price }

// Quantity returns 0, the documented "unconstrained" sentinel. Callers that
// sum quantities across a catalog see unlimited products contribute 0.
func (p *UnlimitedProduct) Quantity() float64 { return 0 }

// SetQuantity always fails: unlimited products do not track stock.
func (p *UnlimitedProduct) SetQuantity(quantity float64) error {
	return NewUnsupportedOperationError("set_quantity", p.name)
}

// IsActive reports whether the product is eligible for purchase
func (p *UnlimitedProduct) IsActive() bool { return p.active }

// Activate marks the product purchasable
func (p *UnlimitedProduct) Activate() { p.active = true }

// Deactivate marks the product not purchasable
func (p *UnlimitedProduct) Deactivate() { p.active = false }

// SetPromotion attaches a promotion, replacing any existing one
func (p *UnlimitedProduct) SetPromotion(promo Promotion) { p.promotion = promo }

// Promotion returns the attached promotion, or nil
func (p *UnlimitedProduct) Promotion() Promotion { return p.promotion }

// Show returns the catalog line with "Unlimited" in place of a stock count
func (p *UnlimitedProduct) Show() string {
	return fmt.Sprintf("%s, Price: %g, Quantity: Unlimited, Promotion: %s",
		p.name, p.price, promotionName(p.promotion))
}

// Buy purchases quantity units at flat unit price. Only positivity is
// checked; no stock is consulted or mutated. An attached promotion is shown
// in the catalog but deliberately never participates in pricing here.
func (p *UnlimitedProduct) Buy(quantity float64) (float64, error) {
	if quantity <= 0 {
		return 0, NewInvalidArgumentError("quantity", "must be positive", quantity)
	}
	return p.price * quantity, nil
}

// LimitedProduct tracks stock like StandardProduct but rejects any single
// order line above its per-order cap.
type LimitedProduct struct {
	StandardProduct
	maxPerOrder float64
}

// NewLimitedProduct constructs a LimitedProduct. In addition to the standard
// constraints, maxPerOrder must be greater than zero.
func NewLimitedProduct(name string, price, quantity, maxPerOrder float64) (*LimitedProduct, error) {
	base, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if maxPerOrder <= 0 {
		return nil, NewInvalidArgumentError("max_per_order", "must be greater than zero", maxPerOrder)
	}
	return &LimitedProduct{StandardProduct: *base, maxPerOrder: maxPerOrder}, nil
}

// MaxPerOrder returns the per-order cap
func (p *LimitedProduct) MaxPerOrder() float64 { return p.maxPerOrder }

// Show returns the catalog line with the per-order cap in place of a stock count
func (p *LimitedProduct) Show() string {
	return fmt.Sprintf("%s, Price: %g, Limited to %g per order, Promotion: %s",
		p.name, p.price, p.maxPerOrder, promotionName(p.promotion))
}

// Buy rejects quantities above the per-order cap, then delegates to the
// standard purchase logic.
func (p *LimitedProduct) Buy(quantity float64) (float64, error) {
	if quantity > p.maxPerOrder {
		return 0, NewOrderLimitExceededError(p.name, quantity, p.maxPerOrder)
	}
	return p.StandardProduct.Buy(quantity)
}

func promotionName(p Promotion) string {
	if p == nil {
		return "None"
	}
	return p.Name()
}

// compile-time assertions that all product variants implement Product
var (
	_ Product = (*StandardProduct)(nil)
	_ Product = (*UnlimitedProduct)(nil)
	_ Product = (*LimitedProduct)(nil)
)

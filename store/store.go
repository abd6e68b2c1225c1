// Package store provides the catalog aggregate for the storefront system.
package store

import (
	"log/slog"

	"storefront/domain"
)

// Store owns an insertion-ordered collection of products and processes
// multi-line orders against it. The collection may contain inactive products;
// they are filtered out of the active-product query but still counted in
// quantity totals. No locking: the design assumes a single logical actor
// mutates the catalog at a time.
type Store struct {
	products []domain.Product
}

// New constructs a Store with an initial product collection, which may be empty.
func New(products ...domain.Product) *Store {
	s := &Store{products: make([]domain.Product, 0, len(products))}
	s.products = append(s.products, products...)
	return s
}

// AddProduct appends a product to the catalog
func (s *Store) AddProduct(p domain.Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes a product by reference equality. It is a no-op if the
// product is not in the catalog.
func (s *Store) RemoveProduct(p domain.Product) {
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// GetAllProducts returns the currently active products in insertion order.
func (s *Store) GetAllProducts() []domain.Product {
	active := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// GetTotalQuantity sums Quantity over every product in the catalog, active or
// not. Unlimited products contribute their sentinel 0 to the sum.
func (s *Store) GetTotalQuantity() float64 {
	var total float64
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// Line is one (product, requested quantity) pair within a batch order.
type Line struct {
	Product  domain.Product
	Quantity float64
}

// LineResult is the outcome of one order line. Exactly one of Price and Err
// is meaningful: a failed line carries its error and contributes 0.
type LineResult struct {
	Product  domain.Product
	Quantity float64
	Price    float64
	Err      error
}

// Order processes lines strictly in the given order. Each line is bought
// independently; a failing line is recorded in its LineResult and does not
// abort the batch. The returned total covers only the lines that succeeded.
func (s *Store) Order(lines []Line) (float64, []LineResult) {
	var total float64
	results := make([]LineResult, 0, len(lines))

	for _, ln := range lines {
		price, err := ln.Product.Buy(ln.Quantity)
		if err != nil {
			slog.Warn("order line failed",
				"product", ln.Product.Name(),
				"quantity", ln.Quantity,
				"error", err,
			)
			results = append(results, LineResult{
				Product:  ln.Product,
				Quantity: ln.Quantity,
				Err:      err,
			})
			continue
		}
		total += price
		results = append(results, LineResult{
			Product:  ln.Product,
			Quantity: ln.Quantity,
			Price:    price,
		})
	}

	return total, results
}

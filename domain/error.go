// Package domain defines error types for the storefront system.
package domain

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a constructor or call argument is invalid
type InvalidArgumentError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidArgumentError
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// UnsupportedOperationError is returned when an operation is not supported by a
// product variant, such as setting stock on an unlimited product
type UnsupportedOperationError struct {
	Op      string
	Product string
}

// Error implements the error interface for UnsupportedOperationError
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: op=%s, product=%s", e.Op, e.Product)
}

// Is allows proper error type checking with errors.Is()
func (e *UnsupportedOperationError) Is(target error) bool {
	_, ok := target.(*UnsupportedOperationError)
	return ok
}

// InactiveProductError is returned when a purchase is attempted on a deactivated product
type InactiveProductError struct {
	Product string
}

// Error implements the error interface for InactiveProductError
func (e *InactiveProductError) Error() string {
	return fmt.Sprintf("inactive product: product=%s", e.Product)
}

// Is allows proper error type checking with errors.Is()
func (e *InactiveProductError) Is(target error) bool {
	_, ok := target.(*InactiveProductError)
	return ok
}

// InsufficientStockError is returned when a purchase quantity exceeds available stock
type InsufficientStockError struct {
	Product   string
	Requested float64
	Available float64
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: product=%s, requested=%g, available=%g",
		e.Product, e.Requested, e.Available)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// OrderLimitExceededError is returned when a purchase quantity exceeds a product's
// per-order cap
type OrderLimitExceededError struct {
	Product   string
	Requested float64
	Limit     float64
}

// Error implements the error interface for OrderLimitExceededError
func (e *OrderLimitExceededError) Error() string {
	return fmt.Sprintf("order limit exceeded: product=%s, requested=%g, limit=%g",
		e.Product, e.Requested, e.Limit)
}

// Is allows proper error type checking with errors.Is()
func (e *OrderLimitExceededError) Is(target error) bool {
	_, ok := target.(*OrderLimitExceededError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(field, reason string, value interface{}) error {
	return &InvalidArgumentError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(op, product string) error {
	return &UnsupportedOperationError{Op: op, Product: product}
}

// NewInactiveProductError creates a new InactiveProductError
func NewInactiveProductError(product string) error {
	return &InactiveProductError{Product: product}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(product string, requested, available float64) error {
	return &InsufficientStockError{
		Product:   product,
		Requested: requested,
		Available: available,
	}
}

// NewOrderLimitExceededError creates a new OrderLimitExceededError
func NewOrderLimitExceededError(product string, requested, limit float64) error {
	return &OrderLimitExceededError{
		Product:   product,
		Requested: requested,
		Limit:     limit,
	}
}

// Type assertion helpers for use with errors.As()

// IsInvalidArgumentError checks if an error is an InvalidArgumentError
func IsInvalidArgumentError(err error) bool {
	var iae *InvalidArgumentError
	return errors.As(err, &iae)
}

// IsUnsupportedOperationError checks if an error is an UnsupportedOperationError
func IsUnsupportedOperationError(err error) bool {
	var uoe *UnsupportedOperationError
	return errors.As(err, &uoe)
}

// IsInactiveProductError checks if an error is an InactiveProductError
func IsInactiveProductError(err error) bool {
	var ipe *InactiveProductError
	return errors.As(err, &ipe)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}

// IsOrderLimitExceededError checks if an error is an OrderLimitExceededError
func IsOrderLimitExceededError(err error) bool {
	var ole *OrderLimitExceededError
	return errors.As(err, &ole)
}

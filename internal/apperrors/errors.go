package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrReferenceNotFound indicates that account resolution was attempted
// against a customer or supplier that does not exist.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// ErrInvalidAmount indicates a non-positive monetary amount or quantity
// was supplied to a workflow or to the ledger poster.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientStock indicates a stock decrement would drive the
// quantity negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrReturnExceedsLimit indicates a return quantity beyond what remains
// returnable on the originating transaction.
var ErrReturnExceedsLimit = errors.New("return quantity exceeds returnable limit")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// InsufficientStockError carries the quantity actually available so the
// caller can retry with a corrected input.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// NewInsufficientStock builds an InsufficientStockError.
func NewInsufficientStock(productID string, requested, available int64) error {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

// ReturnExceedsLimitError carries the remaining returnable quantity.
type ReturnExceedsLimitError struct {
	TransactionID string
	Requested     int64
	RemainingMax  int64
}

func (e *ReturnExceedsLimitError) Error() string {
	return fmt.Sprintf("return quantity %d exceeds returnable limit for %s: remaining max %d", e.Requested, e.TransactionID, e.RemainingMax)
}

func (e *ReturnExceedsLimitError) Unwrap() error {
	return ErrReturnExceedsLimit
}

// NewReturnExceedsLimit builds a ReturnExceedsLimitError.
func NewReturnExceedsLimit(transactionID string, requested, remaining int64) error {
	return &ReturnExceedsLimitError{TransactionID: transactionID, Requested: requested, RemainingMax: remaining}
}

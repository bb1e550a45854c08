// Package domain holds the core business entities and error taxonomy for the
// cashcard service.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CashCard is the single domain entity: a stored-value card identified by a
// 64-bit integer and carrying an exact decimal amount. The identifier is
// immutable once persisted.
type CashCard struct {
	ID     int64
	Amount decimal.Decimal
}

// NewCashCard builds a CashCard, rejecting identifiers outside the valid
// range and negative amounts (the schema defaults amounts to 0).
func NewCashCard(id int64, amount decimal.Decimal) (*CashCard, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: cash card id must be positive, got %d", ErrValidation, id)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: cash card amount must not be negative, got %s", ErrValidation, amount)
	}
	return &CashCard{ID: id, Amount: amount}, nil
}

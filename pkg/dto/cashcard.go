// Package dto defines the data transfer objects exchanged between the
// repository, service, and transport layers.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Amounts serialize as bare JSON numbers ({"amount":123.45}), matching the
	// wire contract. Decimal values never pass through float64 so precision is
	// preserved end to end.
	decimal.MarshalJSONWithoutQuotes = true
}

// CashCardRead is a read-optimized DTO for cash card queries and API
// responses.
type CashCardRead struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// CashCardCreate is a DTO for inserting a cash card row. Within this service
// it is exercised only by the seed path; the public API is read-only. The
// amount sign is checked by domain.NewCashCard since validator has no
// built-in rules for decimal.Decimal.
type CashCardCreate struct {
	ID     int64 `validate:"required,gt=0"`
	Amount decimal.Decimal
}

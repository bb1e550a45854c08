// Package cashcard defines the persistence port for cash card records.
package cashcard

import (
	"context"

	"github.com/amirasaad/cashcard/pkg/dto"
)

// Repository defines the interface for cash card data access. Get returns
// domain.ErrNotFound for absent identifiers; absence is a first-class result,
// never a panic or a wrapped store fault.
type Repository interface {
	// Get retrieves a cash card by its ID as a read-optimized DTO.
	Get(ctx context.Context, id int64) (*dto.CashCardRead, error)

	// Create inserts a new cash card row from a DTO. Only the seed path uses
	// this; the HTTP surface is read-only.
	Create(ctx context.Context, create dto.CashCardCreate) error
}

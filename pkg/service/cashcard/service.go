// Package cashcard provides business logic for cash card lookups.
package cashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/cashcard/pkg/domain"
	"github.com/amirasaad/cashcard/pkg/dto"
	"github.com/amirasaad/cashcard/pkg/repository/cashcard"
)

// Service exposes the cash card lookup operations. It holds an immutable
// reference to its repository, supplied at construction.
type Service struct {
	repo   cashcard.Repository
	logger *slog.Logger
}

// New creates a new cash card service
func New(repo cashcard.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger.With("service", "CashCard"),
	}
}

// Get retrieves a cash card by its identifier. domain.ErrNotFound passes
// through untouched so transport can distinguish absence from store failure.
func (s *Service) Get(ctx context.Context, id int64) (*dto.CashCardRead, error) {
	card, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("cash card not found", "id", id)
			return nil, err
		}
		s.logger.Error("cash card lookup failed", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get cash card %d: %w", id, err)
	}
	return card, nil
}

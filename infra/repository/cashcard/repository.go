// Package cashcard provides the gorm-backed implementation of the cash card
// repository port.
package cashcard

import (
	"context"

	infrarepo "github.com/amirasaad/cashcard/infra/repository"
	"github.com/amirasaad/cashcard/pkg/dto"
	repo "github.com/amirasaad/cashcard/pkg/repository/cashcard"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a cash card repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Get implements cashcard.Repository. Absent rows surface as
// domain.ErrNotFound via the gorm error mapping.
func (r *repository) Get(ctx context.Context, id int64) (*dto.CashCardRead, error) {
	var card CashCard
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&card), nil
}

// Create implements cashcard.Repository.
func (r *repository) Create(ctx context.Context, create dto.CashCardCreate) error {
	card := mapCreateDTOToModel(create)
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(&card).Error,
	)
}

// mapCreateDTOToModel maps a CashCardCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.CashCardCreate) CashCard {
	return CashCard{
		ID:     create.ID,
		Amount: create.Amount,
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(card *CashCard) *dto.CashCardRead {
	return &dto.CashCardRead{
		ID:     card.ID,
		Amount: card.Amount,
	}
}

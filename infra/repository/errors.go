// Package repository keeps database concerns behind the repository ports,
// including the translation of gorm errors into domain errors.
package repository

import (
	"errors"

	"github.com/amirasaad/cashcard/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so callers above
// the infrastructure layer only ever see the domain taxonomy. GORM wraps
// database errors, so the whole chain is traversed.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		}
		currentErr = errors.Unwrap(currentErr)
	}

	// No mapping found, keep the original error.
	return err
}

package repository

import (
	"context"
	"errors"

	"hauspet/internal/domain/entity"
)

// ErrPetNotFound is returned when no pet matches both the ID and the owner.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository persists pets. Every read and write is scoped by owner.
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Pet, error)
	FindOwned(ctx context.Context, ownerID, petID uint) (*entity.Pet, error)
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, ownerID, petID uint) error
}

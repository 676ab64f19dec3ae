package usecase

import (
	"context"

	"hauspet/internal/domain/entity"
)

// AddPetInput defines the data required to register a pet.
type AddPetInput struct {
	Name    string
	Species string
	Breed   *string
	Age     *int
	Weight  *float64
}

// PetUsecase defines owner-scoped pet management. A pet owned by someone else
// is reported exactly like a pet that does not exist.
type PetUsecase interface {
	AddPet(ctx context.Context, ownerID uint, input *AddPetInput) (*entity.Pet, error)
	ListPets(ctx context.Context, ownerID uint) ([]*entity.Pet, error)
	GetPet(ctx context.Context, ownerID, petID uint) (*entity.Pet, error)
	UpdatePet(ctx context.Context, ownerID, petID uint, patch entity.PetPatch) (*entity.Pet, error)
	DeletePet(ctx context.Context, ownerID, petID uint) error

	// PetTag renders the QR code PNG printed on the pet's collar tag.
	PetTag(ctx context.Context, ownerID, petID uint) ([]byte, error)
}

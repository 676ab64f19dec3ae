package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type petService struct {
	petRepo   repository.PetRepository
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// PetServiceParams holds dependencies for PetService, injected by Fx.
type PetServiceParams struct {
	fx.In

	PetRepo   repository.PetRepository
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// NewPetService creates a new pet service instance
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		petRepo:   params.PetRepo,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

func (s *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddPet validates and stores a new pet for the owner.
func (s *petService) AddPet(ctx context.Context, ownerID uint, input *usecase.AddPetInput) (*entity.Pet, error) {
	name := strings.TrimSpace(input.Name)
	species := strings.TrimSpace(input.Species)
	if name == "" || species == "" {
		return nil, domainerrors.ErrPetValidation.WrapMessage("add pet")
	}

	pet := &entity.Pet{
		UserID:  ownerID,
		Name:    name,
		Species: species,
		Breed:   input.Breed,
		Age:     input.Age,
		Weight:  input.Weight,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		s.log(ctx).Error("Failed to save pet", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, domainerrors.ErrPetSaveFailed.WrapMessage(err.Error())
	}

	s.log(ctx).Info("Pet added", slog.Any("ownerID", ownerID), slog.Any("petID", pet.ID))

	return pet, nil
}

// ListPets returns every pet of the owner. A storage failure is an error, never an empty list.
func (s *petService) ListPets(ctx context.Context, ownerID uint) ([]*entity.Pet, error) {
	pets, err := s.petRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pets")
	}

	if pets == nil {
		pets = []*entity.Pet{}
	}

	return pets, nil
}

// GetPet returns one of the owner's pets.
func (s *petService) GetPet(ctx context.Context, ownerID, petID uint) (*entity.Pet, error) {
	return s.findOwned(ctx, ownerID, petID)
}

// UpdatePet applies a partial update to one of the owner's pets.
func (s *petService) UpdatePet(ctx context.Context, ownerID, petID uint, patch entity.PetPatch) (*entity.Pet, error) {
	if blank(patch.Name) || blank(patch.Species) {
		return nil, domainerrors.ErrPetValidation.WrapMessage("update pet")
	}

	pet, err := s.findOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	patch.Apply(pet)
	pet.Name = strings.TrimSpace(pet.Name)
	pet.Species = strings.TrimSpace(pet.Species)

	if err := s.petRepo.Update(ctx, pet); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound.WrapMessage("update pet")
		}

		return nil, errors.Wrap(err, "failed to update pet")
	}

	return pet, nil
}

// DeletePet removes one of the owner's pets together with its readings.
func (s *petService) DeletePet(ctx context.Context, ownerID, petID uint) error {
	err := s.petRepo.Delete(ctx, ownerID, petID)
	if errors.Is(err, repository.ErrPetNotFound) {
		return domainerrors.ErrPetNotFound.WrapMessage("delete pet")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	s.log(ctx).Info("Pet deleted", slog.Any("ownerID", ownerID), slog.Any("petID", petID))

	return nil
}

// PetTag renders the QR tag of one of the owner's pets.
func (s *petService) PetTag(ctx context.Context, ownerID, petID uint) ([]byte, error) {
	pet, err := s.findOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GeneratePetTag(pet)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (s *petService) findOwned(ctx context.Context, ownerID, petID uint) (*entity.Pet, error) {
	pet, err := s.petRepo.FindOwned(ctx, ownerID, petID)
	if errors.Is(err, repository.ErrPetNotFound) {
		return nil, domainerrors.ErrPetNotFound.WrapMessage("find pet")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pet")
	}

	return pet, nil
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

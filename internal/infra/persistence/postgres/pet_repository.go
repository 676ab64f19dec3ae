package postgres

import (
	"context"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements repository.PetRepository. Every query filters on user_id.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// Create persists a new pet for its owner.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPetSaveFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt

	return nil
}

// FindByOwner lists the owner's pets in creation order.
func (repo *petRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pets by owner")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// FindOwned returns the pet only if it belongs to ownerID.
func (repo *petRepository) FindOwned(ctx context.Context, ownerID, petID uint) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", petID, ownerID).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return toPetDomain(&petM), nil
}

// Update saves every mutable column of an owned pet.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ? AND user_id = ?", pet.ID, pet.UserID).
		Updates(map[string]any{
			"name":    pet.Name,
			"species": pet.Species,
			"breed":   pet.Breed,
			"age":     pet.Age,
			"weight":  pet.Weight,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// Delete removes an owned pet. Its readings go with it through ON DELETE CASCADE.
func (repo *petRepository) Delete(ctx context.Context, ownerID, petID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", petID, ownerID).
		Delete(&model.PetModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Species:   data.Species,
		Breed:     data.Breed,
		Age:       data.Age,
		Weight:    data.Weight,
		CreatedAt: data.CreatedAt,
	}
}

func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Species:   data.Species,
		Breed:     data.Breed,
		Age:       data.Age,
		Weight:    data.Weight,
		CreatedAt: data.CreatedAt,
	}
}

package postgres

import (
	"context"
	"testing"

	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepository_OwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewPetRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	breed := "Beagle"
	age := 3
	pet := &entity.Pet{UserID: alice, Name: "Oscar", Species: "dog", Breed: &breed, Age: &age}
	require.NoError(t, repo.Create(ctx, pet))
	require.NotZero(t, pet.ID)
	require.NoError(t, repo.Create(ctx, &entity.Pet{UserID: bob, Name: "Luna", Species: "cat"}))

	pets, err := repo.FindByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Oscar", pets[0].Name)
	assert.Equal(t, "Beagle", *pets[0].Breed)
	assert.Nil(t, pets[0].Weight)

	_, err = repo.FindOwned(ctx, bob, pet.ID)
	assert.ErrorIs(t, err, repository.ErrPetNotFound)

	found, err := repo.FindOwned(ctx, alice, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.ID, found.ID)
}

func TestPetRepository_EmptyList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPetRepository(db)

	pets, err := repo.FindByOwner(context.Background(), seedUser(t, db, "empty@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
}

func TestPetRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPetRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	petID := seedPet(t, db, owner, "Oscar")

	pet, err := repo.FindOwned(ctx, owner, petID)
	require.NoError(t, err)

	weight := 65.0
	pet.Name = "Oscar II"
	pet.Weight = &weight
	require.NoError(t, repo.Update(ctx, pet))

	updated, err := repo.FindOwned(ctx, owner, petID)
	require.NoError(t, err)
	assert.Equal(t, "Oscar II", updated.Name)
	require.NotNil(t, updated.Weight)
	assert.InDelta(t, 65.0, *updated.Weight, 0.001)

	stolen := *pet
	stolen.UserID = other
	assert.ErrorIs(t, repo.Update(ctx, &stolen), repository.ErrPetNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, other, petID), repository.ErrPetNotFound)
	require.NoError(t, repo.Delete(ctx, owner, petID))
	_, err = repo.FindOwned(ctx, owner, petID)
	assert.ErrorIs(t, err, repository.ErrPetNotFound)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPetPatch_Apply(t *testing.T) {
	pet := &Pet{ID: 3, UserID: 7, Name: "Oscar", Species: "dog", Age: ptr(3)}

	PetPatch{Name: ptr("Oscar II"), Weight: ptr(66.5)}.Apply(pet)

	assert.Equal(t, "Oscar II", pet.Name)
	assert.Equal(t, "dog", pet.Species)
	assert.Equal(t, 3, *pet.Age)
	assert.InDelta(t, 66.5, *pet.Weight, 0.001)
	assert.Nil(t, pet.Breed)
	assert.Equal(t, uint(7), pet.UserID)
}

func TestPet_NormalizedSpecies(t *testing.T) {
	assert.Equal(t, "cat", (&Pet{Species: "  Cat "}).NormalizedSpecies())
}

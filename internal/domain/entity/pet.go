package entity

import (
	"strings"
	"time"
)

// Pet belongs to exactly one owner. Every query against pets is scoped by UserID.
type Pet struct {
	ID        uint
	UserID    uint
	Name      string
	Species   string
	Breed     *string
	Age       *int
	Weight    *float64
	CreatedAt time.Time
}

// SpeciesDog and SpeciesCat are the species with dedicated vital ranges.
const (
	SpeciesDog = "dog"
	SpeciesCat = "cat"
)

// NormalizedSpecies returns the lower-cased, trimmed species name.
func (p *Pet) NormalizedSpecies() string {
	return strings.ToLower(strings.TrimSpace(p.Species))
}

// PetPatch carries the fields of a partial pet update; nil fields are left untouched.
type PetPatch struct {
	Name    *string
	Species *string
	Breed   *string
	Age     *int
	Weight  *float64
}

// Apply copies the non-nil fields of the patch onto the pet.
func (patch PetPatch) Apply(pet *Pet) {
	if patch.Name != nil {
		pet.Name = *patch.Name
	}
	if patch.Species != nil {
		pet.Species = *patch.Species
	}
	if patch.Breed != nil {
		pet.Breed = patch.Breed
	}
	if patch.Age != nil {
		pet.Age = patch.Age
	}
	if patch.Weight != nil {
		pet.Weight = patch.Weight
	}
}

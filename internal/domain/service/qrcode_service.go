package service

import "hauspet/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePetTag generates a PNG QR code identifying the pet, for printing on a collar tag
	GeneratePetTag(pet *entity.Pet) ([]byte, error)

	// ParsePetTag parses QR code data and returns the pet ID
	ParsePetTag(qrData string) (uint, error)
}

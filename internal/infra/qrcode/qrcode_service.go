package qrcode

import (
	"encoding/json"

	"hauspet/config"
	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	petTagType  = "pet_tag"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PetTagData is the JSON payload encoded in a pet tag
type PetTagData struct {
	PetID uint   `json:"pet_id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePetTag renders the pet's tag payload as a PNG
func (s *qrcodeService) GeneratePetTag(pet *entity.Pet) ([]byte, error) {
	if pet == nil || pet.ID == 0 {
		return nil, errors.New("pet is required")
	}

	jsonData, err := json.Marshal(PetTagData{
		PetID: pet.ID,
		Name:  pet.Name,
		Type:  petTagType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pet tag data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePetTag decodes a scanned tag payload and returns the pet ID
func (s *qrcodeService) ParsePetTag(qrData string) (uint, error) {
	var data PetTagData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal pet tag data")
	}

	if data.Type != petTagType {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.PetID == 0 {
		return 0, errors.New("pet tag has no pet id")
	}

	return data.PetID, nil
}

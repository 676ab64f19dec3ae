package usecase

import (
	"context"
	"time"

	"hauspet/internal/domain/entity"
)

// RecordReadingOutput returns the stored reading and, for abnormal vitals, the alert raised for it.
type RecordReadingOutput struct {
	Reading *entity.SensorReading
	Alert   *entity.HealthAlert
}

// Location is the last known GPS position of a pet.
type Location struct {
	PetID      uint
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

// HealthUsecase ingests and serves collar telemetry.
type HealthUsecase interface {
	RecordReading(ctx context.Context, ownerID, petID uint, reading *entity.SensorReading) (*RecordReadingOutput, error)

	// ListReadings returns readings newest first. A non-positive limit selects the default.
	ListReadings(ctx context.Context, ownerID, petID uint, limit int) ([]*entity.SensorReading, error)

	CurrentLocation(ctx context.Context, ownerID, petID uint) (*Location, error)
}

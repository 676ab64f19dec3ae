package repository

import (
	"context"
	"errors"

	"hauspet/internal/domain/entity"
)

// ErrReadingNotFound is returned when a pet has no matching sensor reading.
var ErrReadingNotFound = errors.New("sensor reading not found")

// SensorRepository persists collar readings.
type SensorRepository interface {
	Create(ctx context.Context, reading *entity.SensorReading) error

	// FindRecent returns up to limit readings for the pet, newest first.
	FindRecent(ctx context.Context, petID uint, limit int) ([]*entity.SensorReading, error)

	// FindLatestWithLocation returns the newest reading that carries GPS coordinates.
	FindLatestWithLocation(ctx context.Context, petID uint) (*entity.SensorReading, error)
}

package repository

import (
	"context"
	"errors"
	"time"

	"hauspet/internal/domain/entity"
)

// ErrAlertNotFound is returned when a health alert does not exist.
var ErrAlertNotFound = errors.New("health alert not found")

// AlertRepository persists health alerts and their delivery results.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.HealthAlert) error
	FindByID(ctx context.Context, id uint) (*entity.HealthAlert, error)

	// FindByUser returns the user's alerts, newest first.
	FindByUser(ctx context.Context, userID uint, limit int) ([]*entity.HealthAlert, error)

	// MarkDelivered records the push delivery counts for an alert.
	MarkDelivered(ctx context.Context, id uint, totalSent, totalFailed int, deliveredAt time.Time) error
}

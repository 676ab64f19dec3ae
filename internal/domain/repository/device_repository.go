package repository

import (
	"context"
	"errors"

	"hauspet/internal/domain/entity"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert registers a device, reassigning the FCM token to the caller if it already exists.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindActiveByUser retrieves all active devices for a specific user.
	FindActiveByUser(ctx context.Context, userID uint) ([]*entity.UserDevice, error)

	// DeactivateTokens marks the given FCM tokens as inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// Delete removes a device owned by the user, identified by its client device ID.
	Delete(ctx context.Context, userID uint, deviceID string) error
}

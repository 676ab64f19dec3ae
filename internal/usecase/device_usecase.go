package usecase

import (
	"context"

	"hauspet/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or re-binds an existing FCM token to the user
	RegisterDevice(ctx context.Context, userID uint, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UnregisterDevice removes one of the user's devices
	UnregisterDevice(ctx context.Context, userID uint, deviceID string) error
}

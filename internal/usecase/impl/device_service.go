package impl

import (
	"context"
	"log/slog"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice stores the push token. A token already known is moved to this user and reactivated.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uint, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UnregisterDevice deletes one of the user's devices
func (s *deviceService) UnregisterDevice(ctx context.Context, userID uint, deviceID string) error {
	err := s.deviceRepo.Delete(ctx, userID, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound.WrapMessage("unregister device")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

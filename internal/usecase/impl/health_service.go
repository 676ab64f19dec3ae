package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/constants"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type healthService struct {
	txManager  repository.TransactionManager
	petRepo    repository.PetRepository
	sensorRepo repository.SensorRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PetRepo    repository.PetRepository
	SensorRepo repository.SensorRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewHealthService creates the telemetry use case.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		txManager:  params.TxManager,
		petRepo:    params.PetRepo,
		sensorRepo: params.SensorRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *healthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RecordReading stores a collar sample. Abnormal vitals raise an alert in the same
// transaction; the alert event is published only after the commit.
func (s *healthService) RecordReading(ctx context.Context, ownerID, petID uint, reading *entity.SensorReading) (*usecase.RecordReadingOutput, error) {
	pet, err := s.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if err := reading.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidReading.WithDetails(err.Error())
	}

	reading.PetID = pet.ID
	if reading.Timestamp.IsZero() {
		reading.Timestamp = s.now().UTC()
	}

	var alert *entity.HealthAlert
	if findings := reading.Anomalies(pet.Species); len(findings) > 0 {
		condition := strings.Join(findings, "; ")
		alert = &entity.HealthAlert{
			UserID:    ownerID,
			PetID:     pet.ID,
			Source:    entity.AlertSourceSensor,
			Condition: condition,
			Message:   fmt.Sprintf("%s's collar reports %s.", pet.Name, condition),
		}
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SensorRepo().Create(ctx, reading); err != nil {
			return err
		}
		if alert == nil {
			return nil
		}

		return repoFactory.AlertRepo().Create(ctx, alert)
	})
	if err != nil {
		s.log(ctx).Error("Failed to record sensor reading", slog.Any("petID", petID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record sensor reading")
	}

	if alert != nil {
		s.log(ctx).Info("Abnormal vitals recorded",
			slog.Any("petID", pet.ID),
			slog.Any("alertID", alert.ID),
			slog.String("condition", alert.Condition),
		)
		publishAlert(ctx, s.publisher, s.log(ctx), alert, pet.Name)
	}

	return &usecase.RecordReadingOutput{Reading: reading, Alert: alert}, nil
}

// ListReadings returns the most recent readings of an owned pet.
func (s *healthService) ListReadings(ctx context.Context, ownerID, petID uint, limit int) ([]*entity.SensorReading, error) {
	if _, err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	readings, err := s.sensorRepo.FindRecent(ctx, petID, clampLimit(limit, constants.DefaultReadingLimit, constants.MaxReadingLimit))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sensor readings")
	}

	if readings == nil {
		readings = []*entity.SensorReading{}
	}

	return readings, nil
}

// CurrentLocation returns the newest reading that carries GPS coordinates.
func (s *healthService) CurrentLocation(ctx context.Context, ownerID, petID uint) (*usecase.Location, error) {
	if _, err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	reading, err := s.sensorRepo.FindLatestWithLocation(ctx, petID)
	if errors.Is(err, repository.ErrReadingNotFound) {
		return nil, domainerrors.ErrLocationUnavailable.WrapMessage("current location")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest location")
	}

	return &usecase.Location{
		PetID:      petID,
		Latitude:   *reading.Latitude,
		Longitude:  *reading.Longitude,
		RecordedAt: reading.Timestamp,
	}, nil
}

func (s *healthService) ownedPet(ctx context.Context, ownerID, petID uint) (*entity.Pet, error) {
	pet, err := s.petRepo.FindOwned(ctx, ownerID, petID)
	if errors.Is(err, repository.ErrPetNotFound) {
		return nil, domainerrors.ErrPetNotFound.WrapMessage("find pet")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pet")
	}

	return pet, nil
}

func clampLimit(limit, fallback, maximum int) int {
	switch {
	case limit <= 0:
		return fallback
	case limit > maximum:
		return maximum
	default:
		return limit
	}
}

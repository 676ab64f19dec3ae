package postgres

import (
	"context"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{db: db}
}

func (repo *sensorRepository) Create(ctx context.Context, reading *entity.SensorReading) error {
	readingM := fromReadingDomain(reading)

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store sensor reading")
	}

	reading.ID = readingM.ID

	return nil
}

func (repo *sensorRepository) FindRecent(ctx context.Context, petID uint, limit int) ([]*entity.SensorReading, error) {
	var readingModels []*model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sensor readings")
	}

	readings := make([]*entity.SensorReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toReadingDomain(readingM))
	}

	return readings, nil
}

func (repo *sensorRepository) FindLatestWithLocation(ctx context.Context, petID uint) (*entity.SensorReading, error) {
	var readingM model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", petID).
		Order("timestamp DESC").
		Order("id DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toReadingDomain(&readingM), nil
}

// --- Mapper Functions ---

func toReadingDomain(data *model.SensorReadingModel) *entity.SensorReading {
	if data == nil {
		return nil
	}

	return &entity.SensorReading{
		ID:            data.ID,
		PetID:         data.PetID,
		Timestamp:     data.Timestamp,
		HeartRate:     data.HeartRate,
		Temperature:   data.Temperature,
		SpO2:          data.SpO2,
		ActivityLevel: data.ActivityLevel,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		BatteryLevel:  data.BatteryLevel,
		CollarID:      data.CollarID,
	}
}

func fromReadingDomain(data *entity.SensorReading) *model.SensorReadingModel {
	if data == nil {
		return nil
	}

	return &model.SensorReadingModel{
		ID:            data.ID,
		PetID:         data.PetID,
		Timestamp:     data.Timestamp,
		HeartRate:     data.HeartRate,
		Temperature:   data.Temperature,
		SpO2:          data.SpO2,
		ActivityLevel: data.ActivityLevel,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		BatteryLevel:  data.BatteryLevel,
		CollarID:      data.CollarID,
	}
}

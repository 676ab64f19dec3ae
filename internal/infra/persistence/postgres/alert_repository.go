package postgres

import (
	"context"
	"time"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) Create(ctx context.Context, alert *entity.HealthAlert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create health alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

func (repo *alertRepository) FindByID(ctx context.Context, id uint) (*entity.HealthAlert, error) {
	var alertM model.HealthAlertModel

	if err := repo.db.WithContext(ctx).First(&alertM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find health alert")
	}

	return toAlertDomain(&alertM), nil
}

func (repo *alertRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]*entity.HealthAlert, error) {
	var alertModels []*model.HealthAlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list health alerts")
	}

	alerts := make([]*entity.HealthAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

func (repo *alertRepository) MarkDelivered(ctx context.Context, id uint, totalSent, totalFailed int, deliveredAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HealthAlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_sent":   totalSent,
			"total_failed": totalFailed,
			"delivered_at": deliveredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record alert delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAlertDomain(data *model.HealthAlertModel) *entity.HealthAlert {
	if data == nil {
		return nil
	}

	return &entity.HealthAlert{
		ID:          data.ID,
		UserID:      data.UserID,
		PetID:       data.PetID,
		Source:      entity.AlertSource(data.Source),
		Condition:   data.Condition,
		Message:     data.Message,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		CreatedAt:   data.CreatedAt,
		DeliveredAt: data.DeliveredAt,
	}
}

func fromAlertDomain(data *entity.HealthAlert) *model.HealthAlertModel {
	if data == nil {
		return nil
	}

	return &model.HealthAlertModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PetID:       data.PetID,
		Source:      string(data.Source),
		Condition:   data.Condition,
		Message:     data.Message,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		CreatedAt:   data.CreatedAt,
		DeliveredAt: data.DeliveredAt,
	}
}

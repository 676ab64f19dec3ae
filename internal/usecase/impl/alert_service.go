package impl

import (
	"context"

	"hauspet/internal/domain/constants"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/usecase"
)

type alertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates the alert feed use case.
func NewAlertService(alertRepo repository.AlertRepository) usecase.AlertUsecase {
	return &alertService{alertRepo: alertRepo}
}

// ListAlerts returns the newest alerts of the user.
func (s *alertService) ListAlerts(ctx context.Context, userID uint) ([]*entity.HealthAlert, error) {
	alerts, err := s.alertRepo.FindByUser(ctx, userID, constants.MaxAlertLimit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list health alerts")
	}

	if alerts == nil {
		alerts = []*entity.HealthAlert{}
	}

	return alerts, nil
}

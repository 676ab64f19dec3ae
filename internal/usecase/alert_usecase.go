package usecase

import (
	"context"

	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/service"
)

// AlertUsecase serves the alert feed shown in the app.
type AlertUsecase interface {
	ListAlerts(ctx context.Context, userID uint) ([]*entity.HealthAlert, error)
}

// DispatchResult summarises one delivery attempt.
type DispatchResult struct {
	TotalSent     int
	TotalFailed   int
	InvalidTokens int
}

// AlertDispatchUsecase delivers published alerts to the owner's devices.
// Errors for which IsRetryable reports true should be redelivered by the transport.
type AlertDispatchUsecase interface {
	Dispatch(ctx context.Context, event *service.HealthAlertEvent) (*DispatchResult, error)
}

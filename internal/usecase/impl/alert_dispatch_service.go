package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type alertDispatchService struct {
	alertRepo       repository.AlertRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
	now             func() time.Time
}

// AlertDispatchServiceParams holds dependencies for AlertDispatchService, injected by Fx.
type AlertDispatchServiceParams struct {
	fx.In

	AlertRepo       repository.AlertRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewAlertDispatchService creates the worker-side delivery use case.
func NewAlertDispatchService(params AlertDispatchServiceParams) usecase.AlertDispatchUsecase {
	return &alertDispatchService{
		alertRepo:       params.AlertRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (s *alertDispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch pushes the alert to every active device of its owner.
// Load failures are retryable; once pushes went out, bookkeeping failures are only logged
// so a redelivery never notifies the owner twice.
func (s *alertDispatchService) Dispatch(ctx context.Context, event *service.HealthAlertEvent) (*usecase.DispatchResult, error) {
	alert, err := s.alertRepo.FindByID(ctx, event.AlertID)
	if errors.Is(err, repository.ErrAlertNotFound) {
		s.log(ctx).Warn("[Worker] Alert no longer exists, dropping event", slog.Any("alertID", event.AlertID))

		return &usecase.DispatchResult{}, nil
	}
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "load alert"))
	}

	if alert.DeliveredAt != nil {
		s.log(ctx).Info("[Worker] Alert already delivered", slog.Any("alertID", alert.ID))

		return &usecase.DispatchResult{TotalSent: alert.TotalSent, TotalFailed: alert.TotalFailed}, nil
	}

	devices, err := s.deviceRepo.FindActiveByUser(ctx, alert.UserID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "load devices"))
	}

	result := &usecase.DispatchResult{}
	if len(devices) == 0 {
		s.log(ctx).Info("[Worker] No active devices for alert owner", slog.Any("alertID", alert.ID))
	} else {
		title, body, data := notificationContent(alert, event.PetName)
		invalidTokens := s.sendBatched(ctx, collectTokens(devices), title, body, data, result)
		s.cleanupInvalidTokens(ctx, invalidTokens)
	}

	if err := s.alertRepo.MarkDelivered(ctx, alert.ID, result.TotalSent, result.TotalFailed, s.now().UTC()); err != nil {
		s.log(ctx).Error("[Worker] Failed to record alert delivery", slog.Any("alertID", alert.ID), slog.Any("error", err))
	}

	s.log(ctx).Info("[Worker] Alert delivery completed",
		slog.Any("alertID", alert.ID),
		slog.Int("total_sent", result.TotalSent),
		slog.Int("total_failed", result.TotalFailed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

func (s *alertDispatchService) sendBatched(ctx context.Context, tokens []string, title, body string, data map[string]string, result *usecase.DispatchResult) []string {
	var invalidTokens []string

	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		batch := tokens[idx:min(idx+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.log(ctx).Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.TotalFailed += len(batch)

			continue
		}

		result.TotalSent += sent
		result.TotalFailed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	result.InvalidTokens = len(invalidTokens)

	return invalidTokens
}

func (s *alertDispatchService) cleanupInvalidTokens(ctx context.Context, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	if err := s.deviceRepo.DeactivateTokens(ctx, tokens); err != nil {
		s.log(ctx).Warn("[Worker] Failed to deactivate invalid tokens",
			slog.Int("count", len(tokens)),
			slog.Any("error", err),
		)
	}
}

func collectTokens(devices []*entity.UserDevice) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

func notificationContent(alert *entity.HealthAlert, petName string) (title, body string, data map[string]string) {
	title = "Health alert"
	if petName != "" {
		title = fmt.Sprintf("Health alert for %s", petName)
	}

	data = map[string]string{
		"alert_id":  strconv.FormatUint(uint64(alert.ID), 10),
		"pet_id":    strconv.FormatUint(uint64(alert.PetID), 10),
		"source":    string(alert.Source),
		"condition": alert.Condition,
	}

	return title, alert.Message, data
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/service"
)

// publishAlert announces a committed alert to the worker. Publishing is best effort:
// the alert row is the source of truth and a failure is only logged.
func publishAlert(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, alert *entity.HealthAlert, petName string) {
	petID := alert.PetID
	event := &service.HealthAlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		PetID:     &petID,
		PetName:   petName,
		Source:    string(alert.Source),
		Condition: alert.Condition,
		Message:   alert.Message,
	}

	if err := publisher.PublishHealthAlert(ctx, event); err != nil {
		logger.Warn("Failed to publish health alert",
			slog.Any("alertID", alert.ID),
			slog.String("source", event.Source),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Health alert published", slog.Any("alertID", alert.ID))
}

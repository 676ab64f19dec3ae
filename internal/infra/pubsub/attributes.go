package pubsub

import (
	"strconv"

	"hauspet/internal/domain/service"
)

// eventAttributes are attached to every published message for filtering and tracing.
func eventAttributes(event *service.HealthAlertEvent) map[string]string {
	attributes := map[string]string{
		"alert_id": strconv.FormatUint(uint64(event.AlertID), 10),
		"user_id":  strconv.FormatUint(uint64(event.UserID), 10),
		"source":   event.Source,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

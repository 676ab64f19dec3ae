package notification

import (
	"context"
	"log/slog"

	"hauspet/internal/domain/service"
)

// logSender records notifications instead of delivering them.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a NotificationService that only logs.
func NewLogSender(logger *slog.Logger) service.NotificationService {
	return &logSender{logger: logger}
}

func (s *logSender) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "[LogSender] Push notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return len(tokens), 0, nil, nil
}

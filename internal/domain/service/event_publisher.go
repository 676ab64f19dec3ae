package service

import (
	"context"
)

// HealthAlertEvent represents a detected health condition to be fanned out by the worker
type HealthAlertEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	AlertID   uint   `json:"alert_id"`
	UserID    uint   `json:"user_id"`
	PetID     *uint  `json:"pet_id,omitempty"`
	PetName   string `json:"pet_name,omitempty"`
	Source    string `json:"source"`
	Condition string `json:"condition"`
	Message   string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishHealthAlert publishes a health alert event for async processing
	PublishHealthAlert(ctx context.Context, event *HealthAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

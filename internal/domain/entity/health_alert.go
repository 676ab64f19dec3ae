package entity

import "time"

// AlertSource identifies what raised a health alert.
type AlertSource string

const (
	AlertSourceAIChat AlertSource = "ai_chat"
	AlertSourceSensor AlertSource = "sensor"
)

// HealthAlert is a notification about a possible health problem with a pet.
// It is created by the API and delivered to the owner's devices by the worker.
type HealthAlert struct {
	ID          uint        `json:"id"`
	UserID      uint        `json:"user_id"`
	PetID       uint        `json:"pet_id"`
	Source      AlertSource `json:"source"`
	Condition   string      `json:"condition"`
	Message     string      `json:"message"`
	TotalSent   int         `json:"total_sent"`
	TotalFailed int         `json:"total_failed"`
	CreatedAt   time.Time   `json:"created_at"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
}

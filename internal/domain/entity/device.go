package entity

import "time"

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"`  // Identifier supplied by the mobile client.
	Platform  string    `json:"platform"`   // ios or android.
	IsActive  bool      `json:"is_active"`  // Cleared when FCM reports the token as invalid.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

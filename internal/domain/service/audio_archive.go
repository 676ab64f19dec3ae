package service

import (
	"context"
)

// AudioArchive keeps a copy of voice chat uploads for later review.
type AudioArchive interface {
	// Save stores the audio under a generated key and returns that key.
	Save(ctx context.Context, userID uint, audio []byte, contentType string) (string, error)
}

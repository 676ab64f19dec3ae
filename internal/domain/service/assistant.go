package service

import (
	"context"
	"io"
)

// Assistant is the upstream AI provider used by the chat endpoints.
type Assistant interface {
	// Complete sends a system prompt and a single user message and returns the raw reply.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Transcribe converts recorded speech to text. filename is a hint for the audio format.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)

	// Synthesize renders text to MP3 speech.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

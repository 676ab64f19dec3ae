package usecase

import "context"

// ChatInput is a text question for the virtual vet.
type ChatInput struct {
	UserID  uint
	Message string
	PetID   *uint
}

// ChatOutput is the assistant reply with the condition marker removed.
type ChatOutput struct {
	Response          string
	ContextUsed       bool
	ConditionDetected *string
}

// VoiceChatInput is a recorded question for the virtual vet.
type VoiceChatInput struct {
	UserID      uint
	Audio       []byte
	ContentType string
	PetID       *uint
}

// VoiceChatOutput carries the transcript, the reply and the reply audio (base64 mp3).
type VoiceChatOutput struct {
	TranscribedText   string
	ResponseText      string
	ResponseAudio     string
	ConditionDetected *string
}

// AIUsecase proxies questions to the language model.
type AIUsecase interface {
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	VoiceChat(ctx context.Context, input *VoiceChatInput) (*VoiceChatOutput, error)
}

// Package ai adapts the OpenAI API to the domain Assistant port.
package ai

import (
	"context"
	"io"
	"net/http"
	"strings"

	"hauspet/config"
	"hauspet/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultChatModel          = openai.GPT3Dot5Turbo
	defaultTranscriptionModel = openai.Whisper1
	defaultSpeechModel        = openai.TTSModel1
	defaultVoice              = openai.VoiceNova
	defaultAudioFilename      = "audio.m4a"
)

type openAIAssistant struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	speechModel        openai.SpeechModel
	voice              openai.SpeechVoice
}

// NewOpenAIAssistant builds the client once at startup. Requests are never retried.
func NewOpenAIAssistant(cfg *config.Config) (service.Assistant, error) {
	aiCfg := cfg.OpenAI
	if aiCfg == nil || strings.TrimSpace(aiCfg.APIKey) == "" {
		return nil, errors.New("openai api key must be provided")
	}

	clientCfg := openai.DefaultConfig(aiCfg.APIKey)
	if aiCfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(aiCfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: aiCfg.Timeout}

	return &openAIAssistant{
		client:             openai.NewClientWithConfig(clientCfg),
		chatModel:          orDefault(aiCfg.ChatModel, defaultChatModel),
		transcriptionModel: orDefault(aiCfg.TranscriptionModel, defaultTranscriptionModel),
		speechModel:        openai.SpeechModel(orDefault(aiCfg.SpeechModel, string(defaultSpeechModel))),
		voice:              openai.SpeechVoice(orDefault(aiCfg.Voice, string(defaultVoice))),
	}, nil
}

// Complete sends one system and one user message and returns the first choice.
func (a *openAIAssistant) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Transcribe uploads the audio as a multipart file; filename tells the API the container format.
func (a *openAIAssistant) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if filename == "" {
		filename = defaultAudioFilename
	}

	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.transcriptionModel,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", errors.Wrap(err, "transcription")
	}

	return resp.Text, nil
}

// Synthesize returns MP3 bytes for the text.
func (a *openAIAssistant) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := a.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          a.speechModel,
		Input:          text,
		Voice:          a.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "speech synthesis")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, errors.Wrap(err, "read synthesized speech")
	}

	return audio, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

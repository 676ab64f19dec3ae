package impl

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	vetPersona = "You are Dr. HausPet, a friendly and empathetic virtual veterinarian. " +
		"Provide clear, concise, and helpful advice. " +
		"Keep your responses to 1-3 sentences for a natural voice conversation."

	conditionInstruction = " When you identify a potential health condition, end your response with a special marker like this:\n" +
		"[CONDITION_DETECTED: \"Canine Dermatitis\"]\n" +
		"Only include this marker if you are reasonably confident in the diagnosis based on the user's description."

	// voiceUploadName is the file name sent to the transcription API; its extension selects the decoder.
	voiceUploadName = "audio.m4a"
)

type aiService struct {
	assistant service.Assistant
	petRepo   repository.PetRepository
	alertRepo repository.AlertRepository
	publisher service.EventPublisher
	archive   service.AudioArchive
	logger    *slog.Logger
}

// AIServiceParams holds dependencies for AIService, injected by Fx.
type AIServiceParams struct {
	fx.In

	Assistant service.Assistant
	PetRepo   repository.PetRepository
	AlertRepo repository.AlertRepository
	Publisher service.EventPublisher
	Archive   service.AudioArchive `optional:"true"`
	Logger    *slog.Logger
}

// NewAIService creates the virtual vet use case.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	return &aiService{
		assistant: params.Assistant,
		petRepo:   params.PetRepo,
		alertRepo: params.AlertRepo,
		publisher: params.Publisher,
		archive:   params.Archive,
		logger:    params.Logger,
	}
}

func (s *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// answer is the result of one pass through the chat pipeline.
type answer struct {
	text        string
	condition   *string
	contextUsed bool
}

// Chat answers a text question.
func (s *aiService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrMessageRequired.WrapMessage("chat")
	}

	ans, err := s.ask(ctx, input.UserID, input.Message, input.PetID)
	if err != nil {
		return nil, err
	}

	return &usecase.ChatOutput{
		Response:          ans.text,
		ContextUsed:       ans.contextUsed,
		ConditionDetected: ans.condition,
	}, nil
}

// VoiceChat transcribes the recording, answers it and speaks the answer back.
func (s *aiService) VoiceChat(ctx context.Context, input *usecase.VoiceChatInput) (*usecase.VoiceChatOutput, error) {
	if len(input.Audio) == 0 {
		return nil, domainerrors.ErrMissingAudio.WrapMessage("voice chat")
	}

	s.archiveUpload(ctx, input)

	transcript, err := s.assistant.Transcribe(ctx, bytes.NewReader(input.Audio), voiceUploadName)
	if err != nil {
		s.log(ctx).Error("Transcription failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	ans, err := s.ask(ctx, input.UserID, transcript, input.PetID)
	if err != nil {
		return nil, err
	}

	speech, err := s.assistant.Synthesize(ctx, ans.text)
	if err != nil {
		s.log(ctx).Error("Speech synthesis failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	return &usecase.VoiceChatOutput{
		TranscribedText:   transcript,
		ResponseText:      ans.text,
		ResponseAudio:     base64.StdEncoding.EncodeToString(speech),
		ConditionDetected: ans.condition,
	}, nil
}

func (s *aiService) ask(ctx context.Context, userID uint, message string, petID *uint) (*answer, error) {
	pet := s.resolvePet(ctx, userID, petID)

	prompt := vetPersona
	if pet != nil {
		prompt += " " + describePet(pet)
	}
	prompt += conditionInstruction

	reply, err := s.assistant.Complete(ctx, prompt, message)
	if err != nil {
		s.log(ctx).Error("Chat completion failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	text, condition := entity.ExtractCondition(reply)
	if condition != nil && pet != nil {
		s.raiseAlert(ctx, pet, *condition)
	}

	return &answer{text: text, condition: condition, contextUsed: pet != nil}, nil
}

// resolvePet returns the pet only when it belongs to the caller; anything else means no pet context.
func (s *aiService) resolvePet(ctx context.Context, userID uint, petID *uint) *entity.Pet {
	if petID == nil {
		return nil
	}

	pet, err := s.petRepo.FindOwned(ctx, userID, *petID)
	if err != nil {
		if !errors.Is(err, repository.ErrPetNotFound) {
			s.log(ctx).Warn("Failed to load pet context", slog.Any("petID", *petID), slog.Any("error", err))
		}

		return nil
	}

	return pet
}

// describePet renders "You are speaking about Oscar, a 3-year-old Golden Retriever."
// The species stands in for a missing breed and a missing age is left out.
func describePet(pet *entity.Pet) string {
	kind := pet.Species
	if pet.Breed != nil && strings.TrimSpace(*pet.Breed) != "" {
		kind = strings.TrimSpace(*pet.Breed)
	}

	if pet.Age != nil {
		return fmt.Sprintf("You are speaking about %s, a %d-year-old %s.", pet.Name, *pet.Age, kind)
	}

	return fmt.Sprintf("You are speaking about %s, a %s.", pet.Name, kind)
}

func (s *aiService) raiseAlert(ctx context.Context, pet *entity.Pet, condition string) {
	alert := &entity.HealthAlert{
		UserID:    pet.UserID,
		PetID:     pet.ID,
		Source:    entity.AlertSourceAIChat,
		Condition: condition,
		Message:   fmt.Sprintf("Dr. HausPet noticed possible %s in %s.", condition, pet.Name),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		s.log(ctx).Warn("Failed to store chat alert", slog.Any("petID", pet.ID), slog.Any("error", err))

		return
	}

	publishAlert(ctx, s.publisher, s.log(ctx), alert, pet.Name)
}

func (s *aiService) archiveUpload(ctx context.Context, input *usecase.VoiceChatInput) {
	if s.archive == nil {
		return
	}

	key, err := s.archive.Save(ctx, input.UserID, input.Audio, input.ContentType)
	if err != nil {
		s.log(ctx).Warn("Failed to archive voice upload", slog.Any("error", err))

		return
	}
	if key != "" {
		s.log(ctx).Debug("Voice upload archived", slog.String("key", key))
	}
}

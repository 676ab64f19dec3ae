package handler

import (
	"io"
	"log/slog"
	"net/http"

	"hauspet/internal/delivery/http/response"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// audioFormField is the multipart field carrying the recorded question.
const audioFormField = "audio"

// AIHandlerParams holds dependencies for AIHandler, injected by Fx.
type AIHandlerParams struct {
	fx.In

	AIUC   usecase.AIUsecase
	Logger *slog.Logger
}

// AIHandler serves the virtual vet chat endpoints.
type AIHandler struct {
	aiUC   usecase.AIUsecase
	logger *slog.Logger
}

// NewAIHandler is the constructor for AIHandler
func NewAIHandler(params AIHandlerParams) *AIHandler {
	return &AIHandler{
		aiUC:   params.AIUC,
		logger: params.Logger,
	}
}

// ChatRequest is the body of POST /api/v1/ai/chat.
type ChatRequest struct {
	Message string     `json:"message"`
	PetID   OptionalID `json:"pet_id"`
}

type chatResponse struct {
	Response          string  `json:"response"`
	ContextUsed       bool    `json:"context_used"`
	ConditionDetected *string `json:"condition_detected"`
}

type voiceChatResponse struct {
	TranscribedText   string  `json:"transcribed_text"`
	ResponseText      string  `json:"response_text"`
	ResponseAudio     string  `json:"response_audio"`
	ConditionDetected *string `json:"condition_detected"`
}

// Chat answers a text question, optionally about one of the caller's pets.
func (h *AIHandler) Chat(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	output, err := h.aiUC.Chat(c.Request().Context(), &usecase.ChatInput{
		UserID:  user.ID,
		Message: req.Message,
		PetID:   req.PetID.Ptr(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, chatResponse{
		Response:          output.Response,
		ContextUsed:       output.ContextUsed,
		ConditionDetected: output.ConditionDetected,
	})
}

// VoiceChat answers a recorded question sent as multipart form data.
func (h *AIHandler) VoiceChat(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(audioFormField)
	if err != nil {
		return domainerrors.ErrMissingAudio.WrapMessage("read audio form file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open audio upload")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read audio upload")
	}

	output, err := h.aiUC.VoiceChat(c.Request().Context(), &usecase.VoiceChatInput{
		UserID:      user.ID,
		Audio:       audio,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		PetID:       parseOptionalID(c.FormValue("pet_id")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, voiceChatResponse{
		TranscribedText:   output.TranscribedText,
		ResponseText:      output.ResponseText,
		ResponseAudio:     output.ResponseAudio,
		ConditionDetected: output.ConditionDetected,
	})
}

package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hauspet/internal/domain/errors"
	mockusecase "hauspet/internal/mocks/usecase"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAITestServer(t *testing.T) (*mockusecase.MockAIUsecase, *echo.Echo) {
	t.Helper()
	uc := mockusecase.NewMockAIUsecase(t)
	h := NewAIHandler(AIHandlerParams{AIUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/chat", h.Chat, signedIn(testUser))
	e.POST("/voice-chat", h.VoiceChat, signedIn(testUser))

	return uc, e
}

func TestAIHandler_ChatPetIDForms(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantPet *uint
	}{
		{name: "number", body: `{"message":"hi","pet_id":5}`, wantPet: ptr(uint(5))},
		{name: "numeric string", body: `{"message":"hi","pet_id":"5"}`, wantPet: ptr(uint(5))},
		{name: "garbage string", body: `{"message":"hi","pet_id":"abc"}`},
		{name: "null", body: `{"message":"hi","pet_id":null}`},
		{name: "zero", body: `{"message":"hi","pet_id":0}`},
		{name: "absent", body: `{"message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, e := newAITestServer(t)
			uc.EXPECT().Chat(mock.Anything, &usecase.ChatInput{UserID: 7, Message: "hi", PetID: tt.wantPet}).
				Return(&usecase.ChatOutput{Response: "ok"}, nil)

			rec := serve(e, http.MethodPost, "/chat", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAIHandler_ChatResponse(t *testing.T) {
	uc, e := newAITestServer(t)
	uc.EXPECT().Chat(mock.Anything, mock.Anything).Return(&usecase.ChatOutput{
		Response:          "Keep the area clean.",
		ContextUsed:       true,
		ConditionDetected: ptr("Canine Dermatitis"),
	}, nil)

	rec := serve(e, http.MethodPost, "/chat", `{"message":"itchy skin","pet_id":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"Keep the area clean.","context_used":true,"condition_detected":"Canine Dermatitis"}`, rec.Body.String())
}

func TestAIHandler_ChatErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "empty message", err: domainerrors.ErrMessageRequired, wantStatus: http.StatusBadRequest, wantMsg: "Message is required"},
		{name: "upstream failure", err: domainerrors.ErrUpstreamFailure, wantStatus: http.StatusInternalServerError, wantMsg: "AI service request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, e := newAITestServer(t)
			uc.EXPECT().Chat(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(e, http.MethodPost, "/chat", `{"message":""}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func newVoiceRequest(t *testing.T, audio []byte, petID string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if audio != nil {
		part, err := writer.CreateFormFile("audio", "question.m4a")
		require.NoError(t, err)
		_, err = part.Write(audio)
		require.NoError(t, err)
	}
	if petID != "" {
		require.NoError(t, writer.WriteField("pet_id", petID))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/voice-chat", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestAIHandler_VoiceChat(t *testing.T) {
	uc, e := newAITestServer(t)
	uc.EXPECT().VoiceChat(mock.Anything, mock.MatchedBy(func(in *usecase.VoiceChatInput) bool {
		return in.UserID == 7 && string(in.Audio) == "audio-bytes" && in.PetID != nil && *in.PetID == 4
	})).Return(&usecase.VoiceChatOutput{
		TranscribedText: "my dog is limping",
		ResponseText:    "Rest the leg.",
		ResponseAudio:   "bXAz",
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newVoiceRequest(t, []byte("audio-bytes"), "4"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"transcribed_text": "my dog is limping",
		"response_text": "Rest the leg.",
		"response_audio": "bXAz",
		"condition_detected": null
	}`, rec.Body.String())
}

func TestAIHandler_VoiceChatMissingAudio(t *testing.T) {
	_, e := newAITestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newVoiceRequest(t, nil, "4"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No audio file provided")
}

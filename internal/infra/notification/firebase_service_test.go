package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"hauspet/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticast struct {
	batches [][]string
	failAt  int
}

func (f *fakeMulticast) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, message.Tokens)
	if f.failAt > 0 && len(f.batches) == f.failAt {
		return nil, errors.New("fcm unavailable")
	}

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	return tokens
}

func TestFirebaseService_SplitsIntoBatches(t *testing.T) {
	fake := &fakeMulticast{}
	svc := &firebaseService{client: fake}

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), makeTokens(1201), "t", "b", nil)
	require.NoError(t, err)

	assert.Equal(t, 1201, sent)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
	require.Len(t, fake.batches, 3)
	assert.Len(t, fake.batches[0], 500)
	assert.Len(t, fake.batches[1], 500)
	assert.Len(t, fake.batches[2], 201)
}

func TestFirebaseService_NoTokens(t *testing.T) {
	fake := &fakeMulticast{}
	svc := &firebaseService{client: fake}

	sent, failed, _, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, failed)
	assert.Empty(t, fake.batches)
}

func TestFirebaseService_SendErrorKeepsPartialCounts(t *testing.T) {
	fake := &fakeMulticast{failAt: 2}
	svc := &firebaseService{client: fake}

	sent, _, _, err := svc.SendBatchNotification(context.Background(), makeTokens(700), "t", "b", nil)
	require.Error(t, err)
	assert.Equal(t, 500, sent)
}

func TestNewNotificationService_FallsBackToLogSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &logSender{}, svc)

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
}

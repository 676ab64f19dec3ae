package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hauspet/internal/domain/repository"
	mockRepo "hauspet/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against factory, like the GORM manager does.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}

func ptr[T any](v T) *T {
	return &v
}

package usecase

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRetryableError(t *testing.T) {
	base := errors.New("connection refused")
	err := errors.Wrap(NewRetryableError(base), "load alert")

	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "retryable: connection refused")

	assert.False(t, IsRetryable(io.EOF))
	assert.NoError(t, NewRetryableError(nil))
}

package usecase

import (
	"fmt"

	"github.com/pkg/errors"
)

// retryableError marks a failure that a message transport should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable. A nil error stays nil.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

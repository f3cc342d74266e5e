package assistant

import (
	"errors"
	"fmt"
)

// ErrorType classifies gateway failures.
type ErrorType string

const (
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeProvider ErrorType = "PROVIDER"
)

// ServiceError wraps a failure of the generative-text service: transport,
// quota, or an unusable response. The gateway never retries; retry policy
// belongs to the caller.
type ServiceError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assistant %s error in %s: %s (caused by: %v)", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("assistant %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

// NewProviderError wraps an upstream failure.
func NewProviderError(operation, msg string, cause error) *ServiceError {
	return &ServiceError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}

// IsServiceError reports whether err is (or wraps) a gateway failure.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownPolicy        = errors.New("unknown scheduling policy")
	ErrIterationLimit       = errors.New("simulation iteration limit exceeded")
)

// FieldError describes a rejected field of one job descriptor.
type FieldError struct {
	Pid     int    `json:"pid,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	if f.Pid != 0 {
		return fmt.Sprintf("pid %d: %s %s", f.Pid, f.Field, f.Message)
	}
	return fmt.Sprintf("%s %s", f.Field, f.Message)
}

// ValidationError is returned when input or configuration is rejected before a
// simulation starts. Kind is one of the sentinel errors above.
type ValidationError struct {
	Kind    error
	Message string
	Details []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%v: %s (%s)", e.Kind, e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func NewInputError(msg string, details ...FieldError) *ValidationError {
	return &ValidationError{Kind: ErrInvalidInput, Message: msg, Details: details}
}

func NewConfigurationError(msg string, details ...FieldError) *ValidationError {
	return &ValidationError{Kind: ErrInvalidConfiguration, Message: msg, Details: details}
}

// IsValidation reports whether err was caused by rejected input or configuration.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrUnknownPolicy)
}

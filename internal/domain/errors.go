package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Document processing errors
	ErrInvalidFile      ErrorCode = "INVALID_FILE"
	ErrExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	ErrInsufficientText ErrorCode = "INSUFFICIENT_TEXT"

	// Generation errors
	ErrLLMUnavailable   ErrorCode = "LLM_UNAVAILABLE"
	ErrGenerationFailed ErrorCode = "GENERATION_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInvalidFileError(message string, err error) *DomainError {
	return NewError(ErrInvalidFile, message, err)
}

func NewExtractionFailedError(err error) *DomainError {
	return NewError(ErrExtractionFailed, "Failed to extract text from the document", err)
}

func NewInsufficientTextError(message string) *DomainError {
	return NewError(ErrInsufficientText, message, nil)
}

func NewLLMUnavailableError(message string, err error) *DomainError {
	return NewError(ErrLLMUnavailable, message, err)
}

func NewGenerationFailedError(message string) *DomainError {
	return NewError(ErrGenerationFailed, message, nil)
}

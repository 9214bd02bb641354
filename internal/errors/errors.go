package errors

import (
	"fmt"
)

// ErrorType classifies pipeline failures.
type ErrorType string

const (
	// ErrTypeStructural covers wrong field counts and missing files; the
	// record or file is skipped with no partial record emitted.
	ErrTypeStructural ErrorType = "STRUCTURAL"
	// ErrTypeValidation covers named business rule failures.
	ErrTypeValidation ErrorType = "VALIDATION"
	// ErrTypeConversion covers numeric parse failures.
	ErrTypeConversion ErrorType = "CONVERSION"
	// ErrTypeCollaborator covers enrichment provider failures; these degrade
	// to zero products enriched and never abort a run.
	ErrTypeCollaborator ErrorType = "COLLABORATOR"
	// ErrTypeStorage covers output file failures.
	ErrTypeStorage ErrorType = "STORAGE"
	// ErrTypeConfig covers configuration failures.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError represents an application-specific error with its taxonomy class.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStructuralError creates a structural error (missing file, bad shape).
func NewStructuralError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStructural, message, cause)
}

// NewCollaboratorError creates an enrichment collaborator error.
func NewCollaboratorError(message string, cause error) *AppError {
	return NewAppError(ErrTypeCollaborator, message, cause)
}

// NewStorageError creates an output storage error.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

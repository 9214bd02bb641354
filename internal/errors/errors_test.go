package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewStructuralError("sales data file not found", io.EOF)
	assert.Equal(t, "[STRUCTURAL] sales data file not found: EOF", err.Error())

	bare := NewAppError(ErrTypeValidation, "Missing Region", nil)
	assert.Equal(t, "[VALIDATION] Missing Region", bare.Error())

	cfg := NewConfigError("failed to load configuration", io.EOF)
	assert.Equal(t, ErrTypeConfig, cfg.Type)
	assert.Equal(t, "[CONFIG] failed to load configuration: EOF", cfg.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewCollaboratorError("catalog fetch failed", io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, ErrTypeCollaborator, appErr.Type)
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewStorageError("write failed", nil).
		WithContext("path", "/tmp/report.txt").
		WithContext("bytes", 42)

	assert.Equal(t, "/tmp/report.txt", err.Context["path"])
	assert.Equal(t, 42, err.Context["bytes"])
}

package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "salescli/internal/errors"
)

// WriteText writes content to path as UTF-8, creating parent directories as
// needed.
func WriteText(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write file %s", path), err)
	}

	slog.Info("Wrote output file",
		slog.String("path", path),
		slog.Int("bytes", len(content)))
	return nil
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

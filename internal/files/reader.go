package files

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	apperrors "salescli/internal/errors"
)

// ReadLines reads the sales data file and returns its lines with line
// endings stripped. Encodings are tried in order: UTF-8, Latin-1, CP1252.
// A missing or unreadable file is fatal for the run.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewStructuralError(fmt.Sprintf("sales data file not found: %s", path), err)
		}
		return nil, apperrors.NewStructuralError(fmt.Sprintf("failed to read sales data file: %s", path), err)
	}

	text, encoding, err := decode(data)
	if err != nil {
		return nil, apperrors.NewStructuralError("failed to decode sales data file", err)
	}

	slog.Debug("Read sales data file",
		slog.String("path", path),
		slog.String("encoding", encoding),
		slog.Int("bytes", len(data)))

	return splitLines(text), nil
}

// decode converts raw file bytes to a string, falling back from UTF-8 to the
// legacy single-byte encodings. Latin-1 maps 0x80-0x9F to control characters,
// so when those bytes are present the data is treated as CP1252, where they
// carry printable punctuation.
func decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	cm := charmap.ISO8859_1
	name := "latin-1"
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			cm = charmap.Windows1252
			name = "cp1252"
			break
		}
	}

	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", err
	}
	return string(decoded), name, nil
}

// splitLines splits text into lines, tolerating CRLF endings and dropping a
// trailing empty line left by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

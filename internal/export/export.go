// Package export saves server-side attempt exports to local files.
// The encoding is produced entirely by the server; this package only
// moves bytes and guarantees no half-written file is left behind.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaemin/econquiz/internal/api"
)

// ByteSource fetches the raw encoded bytes of a stored attempt.
// Implemented by the API client.
type ByteSource interface {
	ExportAttempt(ctx context.Context, attemptID string, format api.ExportFormat) ([]byte, error)
}

// Filename returns the download filename for an attempt export.
func Filename(attemptID string, format api.ExportFormat) string {
	return fmt.Sprintf("quiz_attempt_%s.%s", attemptID, format)
}

// Save fetches the export for attemptID and writes it into dir,
// returning the final file path. The write goes through a temp file
// that is renamed into place on success and removed on every failure
// path. Exports are idempotent: saving the same attempt twice yields
// identical content.
func Save(ctx context.Context, src ByteSource, attemptID string, format api.ExportFormat, dir string) (string, error) {
	data, err := src.ExportAttempt(ctx, attemptID, format)
	if err != nil {
		return "", fmt.Errorf("fetch export: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	target := filepath.Join(dir, Filename(attemptID, format))

	tmp, err := os.CreateTemp(dir, ".econquiz-export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("move export into place: %w", err)
	}

	return target, nil
}

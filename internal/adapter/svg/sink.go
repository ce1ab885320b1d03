package svg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
)

// Stdout is the OutputPath that selects standard output instead of a file.
const Stdout = "-"

// FileSink publishes rendered views to a file or to standard output.
// It implements pipeline.Sink.
type FileSink struct {
	path     string
	renderer *Renderer
	stdout   io.Writer
	logger   *slog.Logger
}

// NewFileSink creates a sink writing to path, or to os.Stdout when path is "-".
func NewFileSink(path string, renderer *Renderer, logger *slog.Logger) *FileSink {
	return &FileSink{path: path, renderer: renderer, stdout: os.Stdout, logger: logger}
}

// Name identifies the sink in logs and metrics.
func (s *FileSink) Name() string { return "svg" }

// Publish renders the view. File output is written to a temporary file in the
// target directory and renamed into place, so readers never see a partial SVG.
func (s *FileSink) Publish(_ context.Context, view domain.View) error {
	if s.path == Stdout {
		return s.renderer.Render(s.stdout, view)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".forecast-*.svg")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := s.renderer.Render(tmp, view); err != nil {
		tmp.Close() //nolint:errcheck // render error takes precedence
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}

	s.logger.Info("forecast written", "path", s.path, "view_id", view.ID)
	return nil
}

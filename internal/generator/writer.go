package generator

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	generrors "github.com/sqordia/prompt-seed/internal/errors"
	"github.com/sqordia/prompt-seed/internal/logger"
)

// StdoutPath makes the writer print the script instead of creating a file
const StdoutPath = "-"

// Writer persists a script as UTF-8 text
type Writer struct {
	fs     afero.Fs
	stdout io.Writer
}

// NewWriter creates a writer over fs; stdout receives scripts written to "-"
func NewWriter(fs afero.Fs, stdout io.Writer) *Writer {
	return &Writer{fs: fs, stdout: stdout}
}

// Write stores the script at path, replacing any existing file
func (w *Writer) Write(path string, s *Script) error {
	if path == StdoutPath {
		if _, err := io.WriteString(w.stdout, s.Text); err != nil {
			return generrors.WriteFailed("stdout", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return generrors.WriteFailed(path, err)
		}
	}

	if err := afero.WriteFile(w.fs, path, []byte(s.Text), 0o644); err != nil {
		return generrors.WriteFailed(path, err)
	}

	logger.Debug("Wrote seed script", zap.String("path", path), zap.Int("bytes", len(s.Text)))
	return nil
}

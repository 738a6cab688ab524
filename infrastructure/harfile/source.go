package harfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"har-analyzer/domain"
)

type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileSource{path: path, logger: logger}
}

// Load reads the whole file into memory and parses it.
func (s *FileSource) Load() (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	s.logger.Debug("read HAR file", "path", s.path, "bytes", len(data))

	doc, err := domain.ParseDocument(data)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) && parseErr.Line > 0 {
			s.logger.Warn("HAR syntax error", "line", parseErr.Line, "column", parseErr.Column)
		}
		return nil, err
	}
	return doc, nil
}

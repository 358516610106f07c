package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/catalog"
)

// FileSource loads the catalog from a local CSV or JSON file
type FileSource struct {
	path   string
	clean  Cleaner
	logger *logrus.Entry
}

// NewFileSource creates a file-backed catalog source. clean may be nil.
func NewFileSource(path string, clean Cleaner, logger *logrus.Entry) *FileSource {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &FileSource{
		path:   path,
		clean:  clean,
		logger: logger.WithField("component", "file_source"),
	}
}

// Load reads and decodes the file, chosen by extension
func (s *FileSource) Load(ctx context.Context) ([]catalog.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.path, err)
		}
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrSourceUnavailable, s.path, err)
	}
	defer file.Close()

	var records []catalog.RawRecord
	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		records, err = DecodeJSON(file, s.clean)
	} else {
		records, err = DecodeCSV(file, s.clean)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":    s.path,
		"records": len(records),
	}).Info("Loaded catalog file")
	return records, nil
}

// Close is a no-op for file sources
func (s *FileSource) Close() error {
	return nil
}

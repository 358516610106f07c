package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/fetcher"
)

// RemoteSource loads the catalog over HTTP
type RemoteSource struct {
	url     string
	fetcher *fetcher.Fetcher
	clean   Cleaner
	logger  *logrus.Entry
}

// NewRemoteSource creates a catalog source that downloads from rawURL.
func NewRemoteSource(rawURL string, f *fetcher.Fetcher, clean Cleaner, logger *logrus.Entry) *RemoteSource {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RemoteSource{
		url:     rawURL,
		fetcher: f,
		clean:   clean,
		logger:  logger.WithField("component", "remote_source"),
	}
}

// Load fetches the catalog and decodes it as JSON or CSV
func (s *RemoteSource) Load(ctx context.Context) ([]catalog.RawRecord, error) {
	res, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	var records []catalog.RawRecord
	if isJSON(s.url, res.ContentType) {
		records, err = DecodeJSON(bytes.NewReader(res.Body), s.clean)
	} else {
		records, err = DecodeCSV(bytes.NewReader(res.Body), s.clean)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.url, err)
	}

	s.logger.WithFields(logrus.Fields{
		"url":     s.url,
		"records": len(records),
	}).Info("Loaded remote catalog")
	return records, nil
}

// Close is a no-op for remote sources
func (s *RemoteSource) Close() error {
	return nil
}

func isJSON(rawURL, contentType string) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	if u, err := url.Parse(rawURL); err == nil {
		return strings.EqualFold(path.Ext(u.Path), ".json")
	}
	return false
}

package storage

import (
	"context"
	"errors"

	"github.com/knowledge-engine/recommender/internal/catalog"
)

// ErrSourceUnavailable is returned when the catalog cannot be located or read
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// CatalogSource defines the interface for loading raw catalog rows
type CatalogSource interface {
	Load(ctx context.Context) ([]catalog.RawRecord, error)
	Close() error
}

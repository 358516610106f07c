package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/config"
	"github.com/knowledge-engine/recommender/internal/metrics"
	"github.com/knowledge-engine/recommender/internal/recommend"
	"github.com/knowledge-engine/recommender/internal/search"
	"github.com/knowledge-engine/recommender/internal/storage"
)

// ErrRecordNotFound is returned for an index outside the catalog
var ErrRecordNotFound = errors.New("record not found")

// Engine owns the catalog and everything derived from it. All state is
// built in NewEngine and only read afterwards, so methods are safe for
// concurrent use.
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry

	records     []catalog.Record
	index       *search.Index
	categories  catalog.CategorySet
	recommender *recommend.Recommender

	Stats EngineStats
}

type EngineStats struct {
	Records    int
	Vocabulary int
	Categories int
	BuildTime  time.Duration
	StartTime  time.Time
}

// SimilarItem is a catalog record scored against a reference
type SimilarItem struct {
	Index int
	Title string
	Score float64
}

// NewEngine loads the catalog from source and builds the feature space,
// similarity matrix and category set.
func NewEngine(ctx context.Context, cfg *config.Config, logger *logrus.Entry, source storage.CatalogSource) (*Engine, error) {
	logger = logger.WithField("component", "engine")
	start := time.Now()

	// 1. Load
	raws, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// 2. Normalize
	records := catalog.Normalize(raws)

	// 3. Index
	docs := make([]*search.Document, len(records))
	for i, rec := range records {
		docs[i] = &search.Document{
			ID:      rec.Index,
			Title:   rec.Title,
			Content: rec.DerivedText,
		}
	}
	index := search.NewIndex(docs)

	// 4. Categories
	categories := catalog.ExtractCategories(records)

	var opts []recommend.Option
	if cfg.Recommend.Seed != 0 {
		opts = append(opts, recommend.WithSeed(cfg.Recommend.Seed))
	}

	e := &Engine{
		Config:      cfg,
		Logger:      logger,
		records:     records,
		index:       index,
		categories:  categories,
		recommender: recommend.New(opts...),
		Stats: EngineStats{
			Records:    len(records),
			Vocabulary: index.Space().Size(),
			Categories: len(categories),
			BuildTime:  time.Since(start),
			StartTime:  time.Now(),
		},
	}

	metrics.RecordCatalog(e.Stats.Records, e.Stats.Vocabulary, e.Stats.BuildTime)
	logger.WithFields(logrus.Fields{
		"records":    e.Stats.Records,
		"vocabulary": e.Stats.Vocabulary,
		"categories": e.Stats.Categories,
		"took":       e.Stats.BuildTime.String(),
	}).Info("Catalog indexed")

	return e, nil
}

// Recommend runs a recommendation query against the catalog
func (e *Engine) Recommend(q recommend.Query) recommend.Result {
	start := time.Now()
	res := e.recommender.Recommend(e.records, q)
	metrics.RecordRecommendation(!res.NoMatch(), time.Since(start))

	e.Logger.WithFields(logrus.Fields{
		"category": q.Category,
		"mood":     q.Mood,
		"n":        q.N,
		"results":  len(res.Items),
	}).Debug("Recommendation served")
	return res
}

// Categories returns the sorted category set
func (e *Engine) Categories() catalog.CategorySet {
	out := make(catalog.CategorySet, len(e.categories))
	copy(out, e.categories)
	return out
}

// ResolveCategory maps a category number or name to a known category
func (e *Engine) ResolveCategory(input string) (string, bool) {
	return e.categories.Resolve(input)
}

// Len returns the catalog size
func (e *Engine) Len() int {
	return len(e.records)
}

// Record returns the record at index i
func (e *Engine) Record(i int) (catalog.Record, error) {
	if i < 0 || i >= len(e.records) {
		return catalog.Record{}, fmt.Errorf("%w: index %d", ErrRecordNotFound, i)
	}
	return e.records[i], nil
}

// Similar returns the k records most similar to record i ("more like this")
func (e *Engine) Similar(i, k int) ([]SimilarItem, error) {
	if _, err := e.Record(i); err != nil {
		return nil, err
	}
	neighbors := e.index.Neighbors(i, k)
	items := make([]SimilarItem, len(neighbors))
	for n, nb := range neighbors {
		items[n] = SimilarItem{Index: nb.Index, Title: e.records[nb.Index].Title, Score: nb.Score}
	}
	return items, nil
}

// Search ranks records by similarity of their text to a free-text query
func (e *Engine) Search(query string, k int) []SimilarItem {
	hits := e.index.Search(query, k)
	items := make([]SimilarItem, len(hits))
	for n, hit := range hits {
		items[n] = SimilarItem{Index: hit.Document.ID, Title: hit.Document.Title, Score: hit.Score}
	}
	return items
}

// Package recommend selects catalog records matching a category, a rating
// ceiling and a mood, in random order.
package recommend

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/sentiment"
)

// NoMatchMessage is how callers render an empty result.
const NoMatchMessage = "no suitable movie"

// Query is one recommendation request. Empty Category or Mood means the
// filter was not supplied; a nil RatingCeiling means no rating limit.
type Query struct {
	Category      string
	Mood          string
	RatingCeiling *float64
	N             int
}

// Item is an accepted record with the polarity of its synopsis.
type Item struct {
	Title    string
	Polarity float64
}

// Result is the ordered outcome of a query.
type Result struct {
	Items []Item
}

// NoMatch reports whether the query accepted nothing.
func (r Result) NoMatch() bool {
	return len(r.Items) == 0
}

// Recommender applies queries to a catalog. It is safe for concurrent use.
type Recommender struct {
	mu       sync.Mutex
	rng      *rand.Rand
	polarity func(string) float64
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithSeed makes the shuffle order reproducible.
func WithSeed(seed int64) Option {
	return func(r *Recommender) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(r *Recommender) {
		r.rng = rng
	}
}

// WithPolarity replaces the sentiment scorer.
func WithPolarity(fn func(string) float64) Option {
	return func(r *Recommender) {
		r.polarity = fn
	}
}

// New creates a Recommender seeded from the clock unless an option says otherwise.
func New(opts ...Option) *Recommender {
	r := &Recommender{polarity: sentiment.Polarity}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// Recommend returns up to q.N records that pass the category and rating
// filters and whose synopsis sentiment suits the mood. A non-negative mood
// only admits non-negative synopses; a negative mood admits any.
// The records slice is never reordered.
func (r *Recommender) Recommend(records []catalog.Record, q Query) Result {
	if q.N < 1 {
		return Result{}
	}

	candidates := Candidates(records, q.Category, q.RatingCeiling)
	r.shuffle(candidates)

	moodGiven := q.Mood != ""
	moodNegative := moodGiven && r.polarity(q.Mood) < 0

	// N may be far larger than the catalog
	capacity := q.N
	if len(candidates) < capacity {
		capacity = len(candidates)
	}
	items := make([]Item, 0, capacity)
	for _, rec := range candidates {
		if rec.Synopsis == "" {
			continue
		}
		p := r.polarity(rec.Synopsis)
		if !moodGiven || moodNegative || p >= 0 {
			items = append(items, Item{Title: rec.Title, Polarity: p})
		}
		if len(items) == q.N {
			break
		}
	}
	return Result{Items: items}
}

// Candidates returns a fresh slice of the records whose categories contain
// category case-insensitively (any record when empty) and whose rating does
// not exceed ceiling (any record when nil).
func Candidates(records []catalog.Record, category string, ceiling *float64) []catalog.Record {
	needle := strings.ToLower(category)
	out := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if needle != "" && !strings.Contains(strings.ToLower(rec.Categories), needle) {
			continue
		}
		if ceiling != nil && (!rec.HasRating || rec.Rating > *ceiling) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (r *Recommender) shuffle(records []catalog.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}

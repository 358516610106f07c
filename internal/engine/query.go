package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/knowledge-engine/recommender/internal/recommend"
)

// ParseQuery turns raw user input into a recommendation query. Genre may be
// a category name or its 1-based number. Rating may be empty or "skip" for
// no ceiling, otherwise it must fall within the configured rating range.
// An empty count means the configured default.
func (e *Engine) ParseQuery(genre, mood, rating, count string) (recommend.Query, error) {
	cfg := e.Config.Recommend
	q := recommend.Query{Mood: mood, N: cfg.DefaultCount}

	if genre = strings.TrimSpace(genre); genre != "" {
		resolved, ok := e.ResolveCategory(genre)
		if !ok {
			return recommend.Query{}, fmt.Errorf("unknown genre %q", genre)
		}
		q.Category = resolved
	}

	if rating = strings.TrimSpace(rating); rating != "" && !strings.EqualFold(rating, "skip") {
		v, err := strconv.ParseFloat(rating, 64)
		if err != nil || math.IsNaN(v) {
			return recommend.Query{}, errors.New("rating must be a number")
		}
		if v < cfg.RatingMin || v > cfg.RatingMax {
			return recommend.Query{}, fmt.Errorf("rating must be between %.1f and %.1f", cfg.RatingMin, cfg.RatingMax)
		}
		q.RatingCeiling = &v
	}

	if count = strings.TrimSpace(count); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return recommend.Query{}, errors.New("n must be an integer")
		}
		if n < 1 {
			return recommend.Query{}, errors.New("n must be at least 1")
		}
		if n > cfg.MaxCount {
			return recommend.Query{}, fmt.Errorf("n must be at most %d", cfg.MaxCount)
		}
		q.N = n
	}

	return q, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/api"
	"github.com/knowledge-engine/recommender/internal/config"
	"github.com/knowledge-engine/recommender/internal/engine"
	"github.com/knowledge-engine/recommender/internal/fetcher"
	"github.com/knowledge-engine/recommender/internal/recommend"
	"github.com/knowledge-engine/recommender/internal/sentiment"
	"github.com/knowledge-engine/recommender/internal/storage"
)

func main() {
	once := flag.Bool("once", false, "print one set of recommendations and exit")
	genre := flag.String("genre", "", "genre name or number")
	mood := flag.String("mood", "", "free-text mood")
	rating := flag.String("rating", "", "rating ceiling, or 'skip'")
	n := flag.Int("n", 0, "number of recommendations (defaults to RECOMMEND_DEFAULT_COUNT)")
	name := flag.String("name", "there", "name to address the recommendations to")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	// 2. Logging
	entry := newLogger(cfg.Log).WithField("service", "recommender")
	entry.Info("Starting Movie Recommender")

	// 3. Catalog source
	source := newSource(cfg, entry)
	defer source.Close()

	// 4. Engine
	eng, err := engine.NewEngine(context.Background(), cfg, entry, source)
	if err != nil {
		if errors.Is(err, storage.ErrSourceUnavailable) {
			entry.Fatalf("Catalog unavailable: %v", err)
		}
		entry.Fatalf("Failed to initialize engine: %v", err)
	}

	if *once {
		q, err := buildQuery(eng, *genre, *mood, *rating, *n)
		if err != nil {
			entry.Fatal(err)
		}
		printRecommendations(os.Stdout, *name, eng.Recommend(q))
		return
	}

	// 5. API Server
	server := api.NewServer(eng, entry)
	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func newSource(cfg *config.Config, log *logrus.Entry) storage.CatalogSource {
	var clean storage.Cleaner
	if cfg.Catalog.StripMarkup {
		clean = fetcher.CleanText
	}

	if cfg.Catalog.URL != "" {
		f := fetcher.NewFetcher(fetcher.Options{
			Timeout:       cfg.Catalog.FetchTimeout,
			UserAgent:     cfg.Catalog.UserAgent,
			RespectRobots: cfg.Catalog.RespectRobots,
			Logger:        log,
		})
		return storage.NewRemoteSource(cfg.Catalog.URL, f, clean, log)
	}
	return storage.NewFileSource(cfg.Catalog.Path, clean, log)
}

// buildQuery applies the same input checks as the API. A zero count means
// the configured default.
func buildQuery(eng *engine.Engine, genre, mood, rating string, n int) (recommend.Query, error) {
	count := ""
	if n != 0 {
		count = strconv.Itoa(n)
	}
	return eng.ParseQuery(genre, mood, rating, count)
}

func printRecommendations(w io.Writer, name string, res recommend.Result) {
	if res.NoMatch() {
		fmt.Fprintln(w, recommend.NoMatchMessage)
		return
	}
	fmt.Fprintf(w, "AI analyzed your movie recommendations for %s.\n", name)
	for i, item := range res.Items {
		fmt.Fprintf(w, "%d.%s (polarity:%.2f, %s)\n", i+1, item.Title, item.Polarity, sentiment.Classify(item.Polarity))
	}
}

package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the configuration for the recommender service
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
}

// CatalogConfig describes where the movie catalog comes from
type CatalogConfig struct {
	Path          string        `koanf:"path"`
	URL           string        `koanf:"url"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout"`
	UserAgent     string        `koanf:"user_agent"`
	RespectRobots bool          `koanf:"respect_robots"`
	StripMarkup   bool          `koanf:"strip_markup"`
}

// RecommendConfig holds recommendation defaults and input bounds
type RecommendConfig struct {
	DefaultCount int     `koanf:"default_count"`
	MaxCount     int     `koanf:"max_count"`
	Seed         int64   `koanf:"seed"` // 0 seeds from the clock
	RatingMin    float64 `koanf:"rating_min"`
	RatingMax    float64 `koanf:"rating_max"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// envMappings maps environment variables to koanf paths
var envMappings = map[string]string{
	"CATALOG_PATH":           "catalog.path",
	"CATALOG_URL":            "catalog.url",
	"CATALOG_FETCH_TIMEOUT":  "catalog.fetch_timeout",
	"CATALOG_USER_AGENT":     "catalog.user_agent",
	"CATALOG_RESPECT_ROBOTS": "catalog.respect_robots",
	"CATALOG_STRIP_MARKUP":   "catalog.strip_markup",

	"RECOMMEND_DEFAULT_COUNT": "recommend.default_count",
	"RECOMMEND_MAX_COUNT":     "recommend.max_count",
	"RECOMMEND_SEED":          "recommend.seed",
	"RECOMMEND_RATING_MIN":    "recommend.rating_min",
	"RECOMMEND_RATING_MAX":    "recommend.rating_max",

	"SERVER_ADDR":          "server.addr",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",

	"LOG_LEVEL":  "log.level",
	"LOG_FORMAT": "log.format",
}

// Defaults returns the built-in configuration used before the environment
// is applied.
func Defaults() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:          "imdb_top_1000.csv",
			FetchTimeout:  30 * time.Second,
			UserAgent:     "MovieRecommender/1.0",
			RespectRobots: true,
			StripMarkup:   true,
		},
		Recommend: RecommendConfig{
			DefaultCount: 5,
			MaxCount:     50,
			RatingMin:    7.6,
			RatingMax:    9.3,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load layers environment variables over Defaults and validates the result.
// Empty variables are treated as unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps a known variable to its koanf path. Unknown and
// empty variables return a blank key so the provider drops them.
func envTransformFunc(key, value string) (string, interface{}) {
	path, ok := envMappings[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}
	return path, value
}

// Validate checks the recommendation bounds and server timeouts
func (c *Config) Validate() error {
	r := c.Recommend
	if r.DefaultCount < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_COUNT must be at least 1, got %d", r.DefaultCount)
	}
	if r.MaxCount < r.DefaultCount {
		return fmt.Errorf("RECOMMEND_MAX_COUNT (%d) must not be below RECOMMEND_DEFAULT_COUNT (%d)", r.MaxCount, r.DefaultCount)
	}
	if math.IsNaN(r.RatingMin) || math.IsNaN(r.RatingMax) || r.RatingMin > r.RatingMax {
		return fmt.Errorf("RECOMMEND_RATING_MIN (%v) must not exceed RECOMMEND_RATING_MAX (%v)", r.RatingMin, r.RatingMax)
	}
	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("CATALOG_FETCH_TIMEOUT must be positive, got %s", c.Catalog.FetchTimeout)
	}
	return nil
}

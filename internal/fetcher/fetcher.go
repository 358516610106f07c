package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
)

// ErrDisallowed is returned when robots.txt forbids fetching a URL
var ErrDisallowed = errors.New("fetch disallowed by robots.txt")

// FetchResult contains a downloaded resource
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Options configures a Fetcher
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	RespectRobots bool
	Logger        *logrus.Entry
}

type Fetcher struct {
	client        *http.Client
	userAgent     string
	respectRobots bool
	logger        *logrus.Entry

	robotsMu    sync.Mutex
	robotsCache map[string]*robotstxt.RobotsData
}

func NewFetcher(opts Options) *Fetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = "MovieRecommender/1.0"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:     opts.UserAgent,
		respectRobots: opts.RespectRobots,
		logger:        opts.Logger.WithField("component", "fetcher"),
		robotsCache:   make(map[string]*robotstxt.RobotsData),
	}
}

// Fetch downloads a resource, consulting robots.txt first when enabled
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	if f.respectRobots {
		allowed, err := f.allowed(ctx, target)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
		}
	}

	resp, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	result := &FetchResult{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	result.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	f.logger.WithFields(logrus.Fields{
		"url":   rawURL,
		"bytes": len(result.Body),
	}).Debug("Fetched resource")

	return result, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	return f.client.Do(req)
}

// allowed checks the host's robots.txt, cached per scheme and host
func (f *Fetcher) allowed(ctx context.Context, target *url.URL) (bool, error) {
	key := target.Scheme + "://" + target.Host

	f.robotsMu.Lock()
	robots, cached := f.robotsCache[key]
	f.robotsMu.Unlock()

	if !cached {
		resp, err := f.get(ctx, key+"/robots.txt")
		if err != nil {
			return false, fmt.Errorf("failed to fetch robots.txt: %w", err)
		}
		robots, err = robotstxt.FromResponse(resp)
		resp.Body.Close()
		if err != nil {
			return false, fmt.Errorf("failed to parse robots.txt: %w", err)
		}

		f.robotsMu.Lock()
		f.robotsCache[key] = robots
		f.robotsMu.Unlock()
	}

	path := target.EscapedPath()
	if path == "" {
		path = "/"
	}
	return robots.TestAgent(path, f.userAgent), nil
}

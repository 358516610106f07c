package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/recommender/internal/fetcher"
)

func newServer(t *testing.T, robots string) (*httptest.Server, *int32) {
	t.Helper()
	var robotsHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&robotsHits, 1)
		if robots == "" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(robots))
	})
	mux.HandleFunc("/movies.csv", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TestAgent/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Series_Title,Genre\nHeat,Crime\n"))
	})
	mux.HandleFunc("/private/movies.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret"))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, &robotsHits
}

func TestFetcher_Fetch(t *testing.T) {
	ts, _ := newServer(t, "")
	f := fetcher.NewFetcher(fetcher.Options{Timeout: 5 * time.Second, UserAgent: "TestAgent/1.0", RespectRobots: true})

	result, err := f.Fetch(context.Background(), ts.URL+"/movies.csv")
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/movies.csv", result.URL)
	assert.Equal(t, 200, result.StatusCode)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, string(result.Body), "Heat,Crime")
}

func TestFetcher_RobotsDisallow(t *testing.T) {
	ts, hits := newServer(t, "User-agent: *\nDisallow: /private/\n")
	f := fetcher.NewFetcher(fetcher.Options{Timeout: 5 * time.Second, UserAgent: "TestAgent/1.0", RespectRobots: true})

	_, err := f.Fetch(context.Background(), ts.URL+"/private/movies.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fetcher.ErrDisallowed))

	_, err = f.Fetch(context.Background(), ts.URL+"/movies.csv")
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestFetcher_RobotsIgnored(t *testing.T) {
	ts, hits := newServer(t, "User-agent: *\nDisallow: /\n")
	f := fetcher.NewFetcher(fetcher.Options{Timeout: 5 * time.Second, UserAgent: "TestAgent/1.0"})

	_, err := f.Fetch(context.Background(), ts.URL+"/private/movies.csv")
	assert.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestFetcher_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	f := fetcher.NewFetcher(fetcher.Options{Timeout: 5 * time.Second})

	result, err := f.Fetch(context.Background(), ts.URL+"/missing.csv")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 404, result.StatusCode)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "  A boxer   fights\nback. ", "A boxer fights back."},
		{"tags", "A <i>boxer</i> fights<br/>back.", "A boxer fights back."},
		{"entities", "Tom &amp; Jerry&#39;s chase", "Tom & Jerry's chase"},
		{"script dropped", "<p>Story</p><script>alert(1)</script>", "Story"},
		{"bare ampersand", "Rock & Roll", "Rock & Roll"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetcher.CleanText(tt.input))
		})
	}
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/engine"
	"github.com/knowledge-engine/recommender/internal/metrics"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router chi.Router
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger.WithField("component", "api"),
		Router: chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(chimiddleware.RequestID)
	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(s.instrument)

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Get("/genres", s.handleGenres)
		r.Get("/recommend", s.handleRecommend)
		r.Get("/search", s.handleSearch)
		r.Get("/movies/{index}/similar", s.handleSimilar)
		r.Get("/status", s.handleStatus)
	})
	s.Router.Handle("/metrics", promhttp.Handler())
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router,
		ReadTimeout:  s.Engine.Config.Server.ReadTimeout,
		WriteTimeout: s.Engine.Config.Server.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// instrument records a metric and a log line per request, labelled by route pattern
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordAPIRequest(r.Method, route, ww.Status())

		s.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"route":      route,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": chimiddleware.GetReqID(r.Context()),
		}).Debug("Handled request")
	})
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type GenresResponse struct {
	Genres []string `json:"genres"`
}

type RecommendResponse struct {
	Genre         string               `json:"genre,omitempty"`
	Mood          string               `json:"mood,omitempty"`
	MoodPolarity  float64              `json:"mood_polarity"`
	MoodSentiment string               `json:"mood_sentiment"`
	Rating        *float64             `json:"rating,omitempty"`
	Results       []RecommendationView `json:"results"`
	Message       string               `json:"message,omitempty"`
}

type RecommendationView struct {
	Title     string  `json:"title"`
	Polarity  float64 `json:"polarity"`
	Sentiment string  `json:"sentiment"`
}

type SimilarResponse struct {
	Index   int              `json:"index"`
	Title   string           `json:"title"`
	Results []ScoredItemView `json:"results"`
}

type SearchResponse struct {
	Query   string           `json:"query"`
	Results []ScoredItemView `json:"results"`
}

type ScoredItemView struct {
	Index int     `json:"index"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

type StatusResponse struct {
	Records    int    `json:"records"`
	Vocabulary int    `json:"vocabulary"`
	Categories int    `json:"categories"`
	BuildTime  string `json:"build_time"`
	Uptime     string `json:"uptime"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats
	jsonResponse(w, http.StatusOK, StatusResponse{
		Records:    stats.Records,
		Vocabulary: stats.Vocabulary,
		Categories: stats.Categories,
		BuildTime:  stats.BuildTime.String(),
		Uptime:     time.Since(stats.StartTime).Truncate(time.Second).String(),
	})
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, GenresResponse{Genres: s.Engine.Categories()})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "index must be an integer"})
		return
	}
	k, ok := intParam(w, r, "k", 5)
	if !ok {
		return
	}

	items, err := s.Engine.Similar(index, k)
	if err != nil {
		jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	rec, _ := s.Engine.Record(index)

	jsonResponse(w, http.StatusOK, SimilarResponse{
		Index:   index,
		Title:   rec.Title,
		Results: scoredViews(items),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}
	k, ok := intParam(w, r, "k", 5)
	if !ok {
		return
	}

	jsonResponse(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: scoredViews(s.Engine.Search(query, k)),
	})
}

func scoredViews(items []engine.SimilarItem) []ScoredItemView {
	views := make([]ScoredItemView, len(items))
	for i, item := range items {
		views[i] = ScoredItemView{Index: item.Index, Title: item.Title, Score: item.Score}
	}
	return views
}

// intParam reads an optional positive integer query parameter, writing a 400 on failure
func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "'" + name + "' must be a positive integer"})
		return 0, false
	}
	return v, true
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

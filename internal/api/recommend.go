package api

import (
	"net/http"

	"github.com/knowledge-engine/recommender/internal/recommend"
	"github.com/knowledge-engine/recommender/internal/sentiment"
	"github.com/knowledge-engine/recommender/internal/validation"
)

// RecommendRequest is the validated form of the recommend query string
type RecommendRequest struct {
	Genre  string
	Mood   string   `validate:"max=500"`
	Rating *float64 `validate:"omitempty,gte=0,lte=10"`
	N      int      `validate:"min=1"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRecommendRequest(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res := s.Engine.Recommend(recommend.Query{
		Category:      req.Genre,
		Mood:          req.Mood,
		RatingCeiling: req.Rating,
		N:             req.N,
	})

	moodPolarity := sentiment.Polarity(req.Mood)
	resp := RecommendResponse{
		Genre:         req.Genre,
		Mood:          req.Mood,
		MoodPolarity:  moodPolarity,
		MoodSentiment: sentiment.Classify(moodPolarity).String(),
		Rating:        req.Rating,
		Results:       make([]RecommendationView, len(res.Items)),
	}
	for i, item := range res.Items {
		resp.Results[i] = RecommendationView{
			Title:     item.Title,
			Polarity:  item.Polarity,
			Sentiment: sentiment.Classify(item.Polarity).String(),
		}
	}
	if res.NoMatch() {
		resp.Message = recommend.NoMatchMessage
	}

	jsonResponse(w, http.StatusOK, resp)
}

// parseRecommendRequest turns query parameters into a request, rejecting
// unknown genres, malformed ratings and out-of-range counts.
func (s *Server) parseRecommendRequest(r *http.Request) (*RecommendRequest, error) {
	params := r.URL.Query()

	q, err := s.Engine.ParseQuery(params.Get("genre"), params.Get("mood"), params.Get("rating"), params.Get("n"))
	if err != nil {
		return nil, err
	}

	req := &RecommendRequest{
		Genre:  q.Category,
		Mood:   q.Mood,
		Rating: q.RatingCeiling,
		N:      q.N,
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

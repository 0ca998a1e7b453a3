package server

import (
	"net/http"

	"github.com/tmusat/eurovote/internal/models"
)

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reviews.All())
}

func (s *Server) reviewSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := intPathValue(w, r, "user_id")
	if !ok {
		return
	}
	roundNum, ok := intPathValue(w, r, "round_num")
	if !ok {
		return
	}
	countryID, ok := intPathValue(w, r, "country_id")
	if !ok {
		return
	}

	// Zero-filled when absent; absence is not an error here.
	writeJSON(w, http.StatusOK, s.reviews.Summary(userID, roundNum, countryID))
}

// meanResponse renders null when no reviews exist: the mean of nothing is
// undefined, not zero.
type meanResponse struct {
	MeanScore *float64 `json:"mean_score"`
}

func (s *Server) meanScore(w http.ResponseWriter, r *http.Request) {
	roundNum, ok := intPathValue(w, r, "round_num")
	if !ok {
		return
	}
	countryID, ok := intPathValue(w, r, "country_id")
	if !ok {
		return
	}

	resp := meanResponse{}
	if mean, ok := s.reviews.MeanScore(roundNum, countryID); ok {
		resp.MeanScore = &mean
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) addReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if !decodeBody(w, r, &review) {
		return
	}

	stored, err := s.reviews.Upsert(review)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

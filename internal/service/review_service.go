package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/tmusat/eurovote/internal/metrics"
	"github.com/tmusat/eurovote/internal/models"
	"github.com/tmusat/eurovote/internal/store"
)

// ReviewService implements the domain rules over the review store: atomic
// upsert keyed by the (user_id, country_id, round_num) triple, and score
// aggregation. It must be the only code path that writes reviews, since
// the store itself enforces no unique index.
type ReviewService struct {
	store *store.Store[models.Review]
}

// NewReviewService creates a ReviewService over the given store.
func NewReviewService(s *store.Store[models.Review]) *ReviewService {
	return &ReviewService{store: s}
}

// matchTriple selects reviews sharing r's composite identity.
func matchTriple(r models.Review) store.Predicate[models.Review] {
	return r.SameTriple
}

// validateReview defensively re-checks the ranges the boundary already
// validated, so a broken caller cannot store bad data silently.
func validateReview(r models.Review) error {
	if r.UserID < 1 {
		return fmt.Errorf("%w: user_id must be >= 1, got %d", ErrValidation, r.UserID)
	}
	if r.CountryID < 1 {
		return fmt.Errorf("%w: country_id must be >= 1, got %d", ErrValidation, r.CountryID)
	}
	if r.RoundNum < 1 || r.RoundNum > 3 {
		return fmt.Errorf("%w: round_num must be in [1,3], got %d", ErrValidation, r.RoundNum)
	}
	for _, score := range []struct {
		name  string
		value int
	}{
		{"melody", r.Melody},
		{"performance", r.Performance},
		{"wardrobe", r.Wardrobe},
	} {
		if score.value < 4 || score.value > 10 {
			return fmt.Errorf("%w: %s must be in [4,10], got %d", ErrValidation, score.name, score.value)
		}
	}
	return nil
}

// All returns every review in insertion order.
func (s *ReviewService) All() []models.Review {
	return s.store.All()
}

// Upsert inserts the review, or replaces the existing review with the same
// (user_id, country_id, round_num) triple. The check and the write happen
// atomically inside the store, so concurrent submissions for one triple
// cannot produce duplicates. Upsert is idempotent: submitting the same
// review twice leaves the same stored state as submitting it once.
func (s *ReviewService) Upsert(review models.Review) (models.Review, error) {
	if err := validateReview(review); err != nil {
		metrics.ReviewUpserts.WithLabelValues("rejected").Inc()
		slog.Warn("review rejected", "error", err)
		return models.Review{}, err
	}

	stored, replaced := s.store.Upsert(matchTriple(review), review)
	outcome := "created"
	if replaced {
		outcome = "replaced"
	}
	metrics.ReviewUpserts.WithLabelValues(outcome).Inc()
	slog.Info("review upserted",
		"user_id", review.UserID,
		"country_id", review.CountryID,
		"round_num", review.RoundNum,
		"replaced", replaced,
	)
	return stored, nil
}

// MeanScore computes the aggregate score for one country in one round: the
// average over all matching reviews of each review's own mean
// ((melody+performance+wardrobe)/3), rounded to 2 decimal places.
//
// Rounding is half-away-from-zero (math.Round), so a mean of 4.125 reports
// as 4.13. When no reviews match, ok is false: the domain answer is
// "undefined", not zero, and the boundary decides how to render that.
func (s *ReviewService) MeanScore(roundNum, countryID int) (mean float64, ok bool) {
	reviews := s.store.Filter(func(r models.Review) bool {
		return r.RoundNum == roundNum && r.CountryID == countryID
	})
	if len(reviews) == 0 {
		return 0, false
	}

	var sum float64
	for _, r := range reviews {
		sum += float64(r.Melody+r.Performance+r.Wardrobe) / 3
	}
	return round2(sum / float64(len(reviews))), true
}

// Summary returns the raw score triple one user gave one country in one
// round. A missing review yields the zero-filled triple rather than an
// error: the rendering surface always needs three numeric fields.
func (s *ReviewService) Summary(userID, roundNum, countryID int) models.Scores {
	review, ok := s.store.First(func(r models.Review) bool {
		return r.UserID == userID && r.RoundNum == roundNum && r.CountryID == countryID
	})
	if !ok {
		return models.Scores{}
	}
	return review.Scores()
}

// round2 rounds half away from zero to 2 decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

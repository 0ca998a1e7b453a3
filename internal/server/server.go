// Package server exposes the scoring core over a JSON HTTP API. Handlers
// only parse requests, call services and map typed failures to statuses;
// every domain rule lives below this layer.
package server

import (
	"net/http"

	"github.com/tmusat/eurovote/internal/service"
)

// Server bundles the route handlers with the services they call.
type Server struct {
	users        *service.UserService
	participants *service.ParticipantService
	reviews      *service.ReviewService
}

// New creates a Server over the given services.
func New(users *service.UserService, participants *service.ParticipantService, reviews *service.ReviewService) *Server {
	return &Server{users: users, participants: participants, reviews: reviews}
}

// Handler builds the API route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/user/all", s.listUsers)
	mux.HandleFunc("POST /api/v1/user/add_user/{apikey}", s.addUser)
	mux.HandleFunc("GET /api/v1/user/user/{apikey}", s.getUser)
	mux.HandleFunc("POST /api/v1/user/login", s.login)

	mux.HandleFunc("GET /api/v1/participant/all", s.listParticipants)
	mux.HandleFunc("GET /api/v1/participant/round/{round_num}", s.participantsByRound)
	mux.HandleFunc("GET /api/v1/participant/{country}", s.participantByCountry)

	mux.HandleFunc("GET /api/v1/review/all", s.listReviews)
	mux.HandleFunc("GET /api/v1/review/mean/{round_num}/{country_id}", s.meanScore)
	mux.HandleFunc("GET /api/v1/review/{user_id}/{round_num}/{country_id}", s.reviewSummary)
	mux.HandleFunc("POST /api/v1/review/add_review", s.addReview)

	return mux
}

package server

import (
	"net/http"

	"github.com/tmusat/eurovote/internal/models"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.users.List())
}

func (s *Server) addUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	if _, err := s.users.Create(r.PathValue("apikey"), user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "User added successfully"})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.PathValue("apikey"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username":        user.Username,
		"profile_picture": user.ProfilePicture,
		"isAdmin":         user.IsAdmin,
		"apikey":          user.APIKey,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	PIN      int    `json:"pin"`
}

// loginResponse renders a null apikey on a miss, which is the contract: a
// failed login is an empty result, not an error.
type loginResponse struct {
	APIKey *string `json:"apikey"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp := loginResponse{}
	if key, ok := s.users.Login(req.Username, req.PIN); ok {
		resp.APIKey = &key
	}
	writeJSON(w, http.StatusOK, resp)
}

package server

import "net/http"

func (s *Server) listParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.participants.All())
}

func (s *Server) participantsByRound(w http.ResponseWriter, r *http.Request) {
	roundNum, ok := intPathValue(w, r, "round_num")
	if !ok {
		return
	}

	result, err := s.participants.ByRound(roundNum)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) participantByCountry(w http.ResponseWriter, r *http.Request) {
	participant, err := s.participants.ByCountry(r.PathValue("country"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participant)
}

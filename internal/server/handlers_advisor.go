package server

import (
	"net/http"

	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/services/advisor"
)

type recommendRequest struct {
	Amount   float64 `json:"amount"`
	Duration string  `json:"duration"`
}

// advisorResponse adds the totals shown under the recommendation table.
type advisorResponse struct {
	State           models.AdvisorState `json:"state"`
	TotalAllocation float64             `json:"total_allocation"`
	TotalAmount     float64             `json:"total_amount"`
}

func (s *Server) handleAdvisorState(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	state := sess.Advisor.State()
	WriteJSON(w, http.StatusOK, advisorResponse{
		State:           state,
		TotalAllocation: advisor.TotalAllocation(state.Recommendations),
		TotalAmount:     advisor.TotalAmount(state.Recommendations),
	})
}

func (s *Server) handleAdvisorRecommend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req recommendRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	state, err := sess.Advisor.Recommend(req.Amount, req.Duration)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, advisorResponse{
		State:           state,
		TotalAllocation: advisor.TotalAllocation(state.Recommendations),
		TotalAmount:     advisor.TotalAmount(state.Recommendations),
	})
}

func (s *Server) handleAdvisorReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, advisorResponse{State: sess.Advisor.Reset()})
}

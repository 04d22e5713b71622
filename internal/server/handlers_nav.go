package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/investiq/internal/models"
)

type navigateRequest struct {
	Page string `json:"page"`
}

type stockClickRequest struct {
	Symbol string `json:"symbol"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleNavTransition applies one of the argument-free transitions.
func (s *Server) handleNavTransition(w http.ResponseWriter, r *http.Request, action string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var snap models.Snapshot
	switch action {
	case "get-started":
		snap = sess.Controller.GetStarted()
	case "learn-more":
		snap = sess.Controller.LearnMore()
	case "back-to-landing":
		snap = sess.Controller.BackToLanding()
	case "back-to-dashboard":
		snap = sess.Controller.BackToDashboard()
	}
	WriteJSON(w, http.StatusOK, snap)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req navigateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	snap, err := sess.Controller.Navigate(req.Page)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStockClick(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req stockClickRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Controller.StockClick(req.Symbol))
}

// handleAuthLogin accepts any non-blank email and password. There is no
// credential store; the submitted profile is recorded on the session.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		WriteErrorWithCode(w, http.StatusBadRequest, "email and password are required", "invalid_input")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	snap := sess.Controller.LoginSuccess(models.User{Name: name, Email: email})
	s.logger.Info().Str("session", sess.ID).Str("email", email).Msg("User signed in")
	WriteJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Controller.Logout())
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Controller.ToggleTheme())
}

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/investiq/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/diagnostics", s.handleDiagnostics)

	// Session
	mux.HandleFunc("/api/session", s.handleSession)

	// Navigation
	mux.HandleFunc("/api/nav/", s.routeNav)
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/logout", s.handleAuthLogout)
	mux.HandleFunc("/api/theme/toggle", s.handleThemeToggle)

	// Pages
	mux.HandleFunc("/api/page", s.handleCurrentPage)
	mux.HandleFunc("/api/pages/", s.handlePageByID)
	mux.HandleFunc("/api/stocks/", s.routeStocks)

	// Advisor
	mux.HandleFunc("/api/advisor", s.handleAdvisorState)
	mux.HandleFunc("/api/advisor/recommend", s.handleAdvisorRecommend)
	mux.HandleFunc("/api/advisor/reset", s.handleAdvisorReset)

	// Chat
	mux.HandleFunc("/api/chat", s.handleChat)
}

// routeNav dispatches /api/nav/{action} to the controller transition.
func (s *Server) routeNav(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimPrefix(r.URL.Path, "/api/nav/")
	switch action {
	case "get-started", "learn-more", "back-to-landing", "back-to-dashboard":
		s.handleNavTransition(w, r, action)
	case "navigate":
		s.handleNavigate(w, r)
	case "stock":
		s.handleStockClick(w, r)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// routeStocks dispatches /api/stocks/{symbol} and /api/stocks/{symbol}/chart.png.
func (s *Server) routeStocks(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/stocks/")
	if path == "" {
		WriteError(w, http.StatusBadRequest, "symbol is required in path")
		return
	}

	if strings.HasSuffix(path, "/chart.png") {
		s.handleStockChart(w, r, PathParam(r, "/api/stocks/", "/chart.png"))
		return
	}
	if strings.Contains(path, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleStockDetails(w, r, path)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cfg := s.app.Config

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment": cfg.Environment,
		"currency":    cfg.Currency,
		"session": map[string]string{
			"ttl":            cfg.Session.GetTTL().String(),
			"sweep_interval": cfg.Session.GetSweepInterval().String(),
		},
		"chat": map[string]interface{}{
			"enabled":           s.app.ChatEnabled(),
			"model":             cfg.Clients.Gemini.Model,
			"api_key":           maskSecret(cfg.Clients.Gemini.APIKey),
			"max_output_tokens": cfg.Chat.MaxOutputTokens,
			"rate_per_minute":   cfg.Chat.RatePerMinute,
		},
	})
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	uptime := time.Since(s.app.StartupTime).Round(time.Second)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version":         common.GetVersion(),
		"build":           common.GetBuild(),
		"commit":          common.GetGitCommit(),
		"uptime":          uptime.String(),
		"started_at":      s.app.StartupTime,
		"active_sessions": s.app.Sessions.Len(),
		"chat_enabled":    s.app.ChatEnabled(),
	})
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

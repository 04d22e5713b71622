package server

import (
	"net/http"

	"github.com/bobmcallan/investiq/internal/models"
)

// parseRange reads the ?range= query parameter, writing a 400 on unknown values.
func parseRange(w http.ResponseWriter, r *http.Request) (models.TimeRange, bool) {
	tr, err := models.ParseTimeRange(r.URL.Query().Get("range"))
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "invalid_range")
		return "", false
	}
	return tr, true
}

// handleStockDetails handles GET /api/stocks/{symbol}?range=1M.
func (s *Server) handleStockDetails(w http.ResponseWriter, r *http.Request, symbol string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	tr, ok := parseRange(w, r)
	if !ok {
		return
	}

	details, err := s.app.CatalogService.StockDetails(r.Context(), symbol, tr)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, details)
}

// handleStockChart handles GET /api/stocks/{symbol}/chart.png?range=1M.
func (s *Server) handleStockChart(w http.ResponseWriter, r *http.Request, symbol string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "symbol is required in path")
		return
	}
	tr, ok := parseRange(w, r)
	if !ok {
		return
	}

	png, err := s.app.CatalogService.RenderPriceChart(r.Context(), symbol, tr)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return
	}
	WritePNG(w, png)
}

package server

import (
	"fmt"
	"net/http"

	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/services/navigation"
)

// pageResponse pairs a page payload with the view state it was built for.
type pageResponse struct {
	Page     models.Page     `json:"page"`
	Snapshot models.Snapshot `json:"snapshot"`
	Data     any             `json:"data"`
}

// handleCurrentPage handles GET /api/page: the payload of the session's current page.
func (s *Server) handleCurrentPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	s.writePage(w, r, sess.Controller.Snapshot())
}

// handlePageByID handles GET /api/pages/{page} without changing the current page.
func (s *Server) handlePageByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	id := PathParam(r, "/api/pages/", "")
	p, err := models.ParsePage(id)
	if err != nil {
		WriteServiceError(w, s.logger, fmt.Errorf("%w: %q", navigation.ErrUnknownPage, id))
		return
	}
	s.writePage(w, r, sess.Controller.SnapshotAt(p))
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, snap models.Snapshot) {
	data, err := s.app.CatalogService.PagePayload(r.Context(), snap)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, pageResponse{Page: snap.Page, Snapshot: snap, Data: data})
}

package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/services/chat"
)

type chatRequest struct {
	Text string `json:"text"`
}

// chatResponse carries the appended reply and the full transcript.
// Degraded is set when Reply is the fallback message.
type chatResponse struct {
	Reply      *models.ChatMessage  `json:"reply,omitempty"`
	Skipped    bool                 `json:"skipped,omitempty"`
	Degraded   bool                 `json:"degraded,omitempty"`
	Reason     string               `json:"reason,omitempty"`
	Transcript []models.ChatMessage `json:"transcript"`
}

// handleChat handles GET (transcript) and POST (send) /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodGet {
		WriteJSON(w, http.StatusOK, chatResponse{Transcript: sess.Chat.Transcript()})
		return
	}

	var req chatRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	res := sess.Chat.Send(r.Context(), req.Text)
	resp := chatResponse{Skipped: res.Skipped}
	if !res.Skipped {
		reply := res.Reply
		resp.Reply = &reply
	}
	if res.Err != nil {
		resp.Degraded = true
		resp.Reason = chatFailureReason(res.Err)
		s.logger.Warn().Err(res.Err).Str("session", sess.ID).Msg("Chat reply replaced by fallback")
	}
	resp.Transcript = sess.Chat.Transcript()

	WriteJSON(w, http.StatusOK, resp)
}

func chatFailureReason(err error) string {
	switch {
	case errors.Is(err, chat.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, chat.ErrChatUnavailable):
		return "unavailable"
	default:
		return "upstream_error"
	}
}

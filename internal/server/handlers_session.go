package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/services/navigation"
)

const tokenIssuer = "investiq-server"

// sessionResponse is returned when a session is created or its token refreshed.
type sessionResponse struct {
	Token     string          `json:"token"`
	SessionID string          `json:"session_id"`
	ExpiresAt time.Time       `json:"expires_at"`
	Snapshot  models.Snapshot `json:"snapshot"`
}

// signSessionToken creates an HS256 token carrying the session id.
func signSessionToken(sessionID string, config *common.Config, now time.Time) (string, time.Time, error) {
	exp := now.Add(config.Session.GetTTL())
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iss": tokenIssuer,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Session.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// validateJWT parses and validates a JWT token string using the given secret.
func validateJWT(tokenString string, secret []byte) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, nil, err
	}
	return token, claims, nil
}

// shouldRefreshToken reports whether more than half of the token lifetime has passed.
func shouldRefreshToken(sc *common.SessionContext, ttl time.Duration, now time.Time) bool {
	if sc == nil || sc.IssuedAt == 0 {
		return false
	}
	issued := time.Unix(sc.IssuedAt, 0)
	return now.Sub(issued) > ttl/2
}

// requireSession resolves the session named by the bearer token. It writes a
// 401 and returns false when the request has no token or the session is gone.
// Tokens past half their lifetime are reissued in X-New-Access-Token so an
// active client never outlives its token.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (*navigation.Session, bool) {
	sc := common.SessionContextFromContext(r.Context())
	if sc == nil || sc.SessionID == "" {
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteErrorWithCode(w, http.StatusUnauthorized, "session token required", "session_required")
		return nil, false
	}

	sess, err := s.app.Sessions.Get(sc.SessionID)
	if err != nil {
		WriteServiceError(w, s.logger, err)
		return nil, false
	}

	now := time.Now()
	ttl := s.app.Config.Session.GetTTL()
	if shouldRefreshToken(sc, ttl, now) {
		if token, _, err := signSessionToken(sess.ID, s.app.Config, now); err == nil {
			w.Header().Set("X-New-Access-Token", token)
			w.Header().Set("X-New-Token-Expires-In", strconv.Itoa(int(ttl.Seconds())))
		}
	}
	return sess, true
}

// handleSession handles POST (create), GET (snapshot) and DELETE /api/session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost, http.MethodGet, http.MethodDelete) {
		return
	}

	switch r.Method {
	case http.MethodPost:
		sess := s.app.Sessions.Create()
		token, exp, err := signSessionToken(sess.ID, s.app.Config, time.Now())
		if err != nil {
			s.app.Sessions.Delete(sess.ID)
			WriteServiceError(w, s.logger, fmt.Errorf("failed to sign session token: %w", err))
			return
		}
		WriteJSON(w, http.StatusCreated, sessionResponse{
			Token:     token,
			SessionID: sess.ID,
			ExpiresAt: exp,
			Snapshot:  sess.Controller.Snapshot(),
		})

	case http.MethodGet:
		sess, ok := s.requireSession(w, r)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, sess.Controller.Snapshot())

	case http.MethodDelete:
		sess, ok := s.requireSession(w, r)
		if !ok {
			return
		}
		if err := s.app.Sessions.Delete(sess.ID); err != nil && !errors.Is(err, navigation.ErrSessionNotFound) {
			WriteServiceError(w, s.logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

package navigation

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/services/advisor"
	"github.com/bobmcallan/investiq/internal/services/chat"
)

// Compile-time interface check
var _ interfaces.SessionSweeper = (*Store)(nil)

// ErrSessionNotFound is returned for unknown or swept session ids.
var ErrSessionNotFound = errors.New("navigation: session not found")

// Session bundles the state one client owns: navigation, advisor form and chat widget.
type Session struct {
	ID         string
	CreatedAt  time.Time
	Controller *Controller
	Advisor    *advisor.Advisor
	Chat       *chat.Session

	mu       sync.Mutex
	lastSeen time.Time
}

// LastSeen returns the time the session was last fetched from the store.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// ChatFactory builds the chat widget for a new session.
type ChatFactory func() *chat.Session

// Store is the in-memory registry of client sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newChat  ChatFactory
	now      func() time.Time
	logger   *common.Logger
}

// NewStore creates an empty store. newChat may be nil, giving sessions a
// chat widget with no remote backend.
func NewStore(newChat ChatFactory, logger *common.Logger) *Store {
	if newChat == nil {
		newChat = func() *chat.Session { return chat.NewSession(nil, chat.Options{}, logger) }
	}
	return &Store{
		sessions: make(map[string]*Session),
		newChat:  newChat,
		now:      time.Now,
		logger:   logger,
	}
}

// Create registers a new session on the landing page.
func (st *Store) Create() *Session {
	now := st.now()
	s := &Session{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		Controller: NewController(st.logger),
		Advisor:    advisor.New(st.logger),
		Chat:       st.newChat(),
		lastSeen:   now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	count := len(st.sessions)
	st.mu.Unlock()

	st.logger.Info().Str("session", s.ID).Int("active", count).Msg("Session created")
	return s
}

// Get returns the session with id and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.now())
	return s, nil
}

// Delete removes a session. Deleting an unknown id returns ErrSessionNotFound.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	st.logger.Info().Str("session", id).Msg("Session deleted")
	return nil
}

// Sweep removes sessions idle for longer than maxIdle.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	removed := 0
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	remaining := len(st.sessions)
	st.mu.Unlock()

	if removed > 0 {
		st.logger.Info().Int("removed", removed).Int("active", remaining).Msg("Idle sessions swept")
	}
	return removed
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

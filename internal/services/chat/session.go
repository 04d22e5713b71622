// Package chat bridges the chat widget to a remote conversation and keeps
// the transcript for one client session.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/models"
)

const (
	// Greeting seeds every transcript.
	Greeting = "Hi! I'm your InvestIQ AI assistant. How can I help you today?"

	// Fallback is appended in place of a reply whenever the remote call fails.
	Fallback = "Sorry, I'm having trouble connecting. Please try again later."
)

var (
	// ErrRateLimited is returned when a session sends faster than its configured rate.
	ErrRateLimited = errors.New("chat: rate limit exceeded")

	// ErrChatUnavailable is returned when no remote chat backend is configured
	// or the backend returned an unusable reply.
	ErrChatUnavailable = errors.New("chat: assistant unavailable")
)

// PrimingHistory is the two-turn exchange every conversation starts from.
func PrimingHistory() []models.ChatMessage {
	return []models.ChatMessage{
		{Sender: models.SenderUser, Text: "Hello, I'm looking for an investment advisor."},
		{Sender: models.SenderBot, Text: "Great, I can help with that. What are your investment goals?"},
	}
}

// Result is the outcome of a single Send.
// Reply holds the bot message appended to the transcript, which is the
// fallback text when Err is set.
type Result struct {
	Reply   models.ChatMessage
	Skipped bool
	Err     error
}

// OK reports whether the send produced a real reply.
func (r Result) OK() bool {
	return !r.Skipped && r.Err == nil
}

// Options configures a chat Session.
type Options struct {
	MaxOutputTokens int
	RatePerMinute   int           // 0 disables rate limiting
	Timeout         time.Duration // budget for one remote reply, 0 for none
}

// Session owns one transcript and lazily opens one remote conversation on first send.
type Session struct {
	starter interfaces.ConversationStarter
	opts    Options
	limiter *rate.Limiter
	logger  *common.Logger

	mu         sync.Mutex // guards transcript
	transcript []models.ChatMessage

	callMu sync.Mutex // serializes conversation creation and remote calls
	conv   interfaces.Conversation
}

// NewSession creates a session seeded with the greeting. starter may be nil,
// in which case every send falls back with ErrChatUnavailable.
func NewSession(starter interfaces.ConversationStarter, opts Options, logger *common.Logger) *Session {
	if opts.MaxOutputTokens <= 0 {
		opts.MaxOutputTokens = 100
	}
	s := &Session{
		starter:    starter,
		opts:       opts,
		logger:     logger,
		transcript: []models.ChatMessage{{Text: Greeting, Sender: models.SenderBot}},
	}
	if opts.RatePerMinute > 0 {
		s.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RatePerMinute)), opts.RatePerMinute)
	}
	return s
}

// Send appends text as a user message, asks the remote conversation for a
// reply and appends the reply (or the fallback on failure).
// Blank text is a no-op. The remote call is not cancelled with ctx but is
// bounded by Options.Timeout.
func (s *Session) Send(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Skipped: true}
	}

	s.append(models.ChatMessage{Text: text, Sender: models.SenderUser})

	if s.limiter != nil && !s.limiter.Allow() {
		return s.fail(ErrRateLimited)
	}
	if s.starter == nil {
		return s.fail(ErrChatUnavailable)
	}

	callCtx := context.WithoutCancel(ctx)
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.opts.Timeout)
		defer cancel()
	}

	reply, err := s.call(callCtx, text)
	if err != nil {
		return s.fail(err)
	}

	msg := models.ChatMessage{Text: reply, Sender: models.SenderBot}
	s.append(msg)
	return Result{Reply: msg}
}

func (s *Session) call(ctx context.Context, text string) (string, error) {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	if s.conv == nil {
		conv, err := s.starter.StartConversation(ctx, PrimingHistory(), s.opts.MaxOutputTokens)
		if err != nil {
			return "", fmt.Errorf("failed to start conversation: %w", err)
		}
		s.conv = conv
		s.logger.Debug().Int("max_output_tokens", s.opts.MaxOutputTokens).Msg("Chat conversation started")
	}

	reply, err := s.conv.Send(ctx, text)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("%w: empty reply", ErrChatUnavailable)
	}
	return reply, nil
}

func (s *Session) fail(err error) Result {
	msg := models.ChatMessage{Text: Fallback, Sender: models.SenderBot}
	s.append(msg)
	return Result{Reply: msg, Err: err}
}

func (s *Session) append(m models.ChatMessage) {
	s.mu.Lock()
	s.transcript = append(s.transcript, m)
	s.mu.Unlock()
}

// Transcript returns a copy of the messages so far, oldest first.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

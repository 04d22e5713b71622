package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/models"
)

// fakeStarter records conversation starts and hands out fakeConversations.
type fakeStarter struct {
	mu        sync.Mutex
	starts    int
	history   []models.ChatMessage
	maxTokens int
	startErr  error
	conv      *fakeConversation
}

func (f *fakeStarter) StartConversation(_ context.Context, history []models.ChatMessage, maxOutputTokens int) (interfaces.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	f.history = history
	f.maxTokens = maxOutputTokens
	if f.startErr != nil {
		return nil, f.startErr
	}
	if f.conv == nil {
		f.conv = &fakeConversation{}
	}
	return f.conv, nil
}

type fakeConversation struct {
	mu      sync.Mutex
	sent    []string
	err     error
	reply   string
	ctxErrs []error
}

func (c *fakeConversation) Send(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, text)
	c.ctxErrs = append(c.ctxErrs, ctx.Err())
	if c.err != nil {
		return "", c.err
	}
	if c.reply != "" {
		return c.reply, nil
	}
	return fmt.Sprintf("reply %d", len(c.sent)), nil
}

// stallingConversation blocks until the call context ends.
type stallingConversation struct{}

func (stallingConversation) Send(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type stallingStarter struct{}

func (stallingStarter) StartConversation(context.Context, []models.ChatMessage, int) (interfaces.Conversation, error) {
	return stallingConversation{}, nil
}

func newTestSession(starter interfaces.ConversationStarter, opts Options) *Session {
	return NewSession(starter, opts, common.NewSilentLogger())
}

func TestSession_SeededWithGreeting(t *testing.T) {
	s := newTestSession(&fakeStarter{}, Options{})
	tr := s.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, Greeting, tr[0].Text)
	assert.Equal(t, models.SenderBot, tr[0].Sender)
}

func TestSession_BlankSendIsNoop(t *testing.T) {
	starter := &fakeStarter{}
	s := newTestSession(starter, Options{})

	for _, text := range []string{"", "   ", "\n\t "} {
		res := s.Send(context.Background(), text)
		assert.True(t, res.Skipped)
		assert.False(t, res.OK())
	}
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, starter.starts, "no conversation opened for blank input")
}

func TestSession_LazyConversationReused(t *testing.T) {
	starter := &fakeStarter{}
	s := newTestSession(starter, Options{MaxOutputTokens: 100})

	r1 := s.Send(context.Background(), "What should I buy?")
	require.True(t, r1.OK())
	assert.Equal(t, "reply 1", r1.Reply.Text)

	r2 := s.Send(context.Background(), "And for the long term?")
	require.True(t, r2.OK())
	assert.Equal(t, "reply 2", r2.Reply.Text)

	assert.Equal(t, 1, starter.starts)
	assert.Equal(t, 100, starter.maxTokens)
	assert.Equal(t, PrimingHistory(), starter.history)

	tr := s.Transcript()
	require.Len(t, tr, 5)
	assert.Equal(t, models.ChatMessage{Text: "What should I buy?", Sender: models.SenderUser}, tr[1])
	assert.Equal(t, models.ChatMessage{Text: "reply 1", Sender: models.SenderBot}, tr[2])
	assert.Equal(t, models.SenderUser, tr[3].Sender)
	assert.Equal(t, "reply 2", tr[4].Text)
}

func TestSession_FailureAppendsFallback(t *testing.T) {
	boom := errors.New("network down")
	starter := &fakeStarter{conv: &fakeConversation{err: boom}}
	s := newTestSession(starter, Options{})

	res := s.Send(context.Background(), "hello")
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, Fallback, res.Reply.Text)

	tr := s.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, "hello", tr[1].Text)
	assert.Equal(t, Fallback, tr[2].Text)
}

func TestSession_StartFailureRetriedOnNextSend(t *testing.T) {
	starter := &fakeStarter{startErr: errors.New("bad key")}
	s := newTestSession(starter, Options{})

	res := s.Send(context.Background(), "hi")
	require.Error(t, res.Err)
	assert.Equal(t, Fallback, res.Reply.Text)

	starter.mu.Lock()
	starter.startErr = nil
	starter.mu.Unlock()

	res = s.Send(context.Background(), "hi again")
	require.True(t, res.OK())
	assert.Equal(t, 2, starter.starts)
}

func TestSession_EmptyReplyFallsBack(t *testing.T) {
	starter := &fakeStarter{conv: &fakeConversation{reply: "   "}}
	s := newTestSession(starter, Options{})

	res := s.Send(context.Background(), "hi")
	assert.ErrorIs(t, res.Err, ErrChatUnavailable)
	assert.Equal(t, Fallback, res.Reply.Text)
}

func TestSession_NoBackend(t *testing.T) {
	s := newTestSession(nil, Options{})
	res := s.Send(context.Background(), "anyone there?")
	assert.ErrorIs(t, res.Err, ErrChatUnavailable)
	assert.Equal(t, 3, s.Len())
}

func TestSession_RateLimited(t *testing.T) {
	starter := &fakeStarter{}
	s := newTestSession(starter, Options{RatePerMinute: 2})

	assert.True(t, s.Send(context.Background(), "one").OK())
	assert.True(t, s.Send(context.Background(), "two").OK())

	res := s.Send(context.Background(), "three")
	assert.ErrorIs(t, res.Err, ErrRateLimited)
	assert.Equal(t, Fallback, res.Reply.Text)
	assert.Equal(t, 7, s.Len())
	assert.Len(t, starter.conv.sent, 2)
}

func TestSession_CallDetachedFromCancellation(t *testing.T) {
	starter := &fakeStarter{}
	s := newTestSession(starter, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Send(ctx, "still there?")
	require.True(t, res.OK())
	require.Len(t, starter.conv.ctxErrs, 1)
	assert.NoError(t, starter.conv.ctxErrs[0])
}

func TestSession_TimeoutFallsBack(t *testing.T) {
	s := newTestSession(stallingStarter{}, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	res := s.Send(context.Background(), "anyone?")
	assert.Less(t, time.Since(start), 5*time.Second)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Equal(t, Fallback, res.Reply.Text)
	assert.Equal(t, 3, s.Len())
}

func TestSession_ConcurrentSendsKeepEveryMessage(t *testing.T) {
	starter := &fakeStarter{}
	s := newTestSession(starter, Options{})

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Send(context.Background(), fmt.Sprintf("msg %d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1+2*n, s.Len())
	assert.Equal(t, 1, starter.starts)
	assert.Len(t, starter.conv.sent, n)
}

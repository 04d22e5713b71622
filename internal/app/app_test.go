package app

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/services/chat"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "investiq.toml")
	content := `
environment = "test"

[server]
port = 18080

[session]
ttl = "30m"

[logging]
level = "error"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearGeminiEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "VITE_GEMINI_API_KEY", "INVESTIQ_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(name, "")
	}
}

func TestNewApp_InitializesServices(t *testing.T) {
	clearGeminiEnv(t)

	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Config)
	assert.Equal(t, "test", a.Config.Environment)
	assert.Equal(t, 18080, a.Config.Server.Port)
	assert.Equal(t, 30*time.Minute, a.Config.Session.GetTTL())
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Sessions)
	assert.NotNil(t, a.CatalogService)
	assert.False(t, a.StartupTime.IsZero())
}

func TestNewApp_NoGeminiKeyDisablesChat(t *testing.T) {
	clearGeminiEnv(t)

	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.ChatEnabled())

	s := a.Sessions.Create()
	res := s.Chat.Send(context.Background(), "hello")
	assert.ErrorIs(t, res.Err, chat.ErrChatUnavailable)
	assert.Equal(t, chat.Fallback, res.Reply.Text)
}

func TestNewApp_ConfigFromEnv(t *testing.T) {
	clearGeminiEnv(t)
	t.Setenv("INVESTIQ_CONFIG", writeTestConfig(t))

	a, err := NewApp("")
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "test", a.Config.Environment)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o644))

	_, err := NewApp(path)
	assert.Error(t, err)
}

func TestApp_SessionsGetIndependentChats(t *testing.T) {
	a := New(common.NewDefaultConfig(), common.NewSilentLogger(), nil)

	s1 := a.Sessions.Create()
	s2 := a.Sessions.Create()
	s1.Chat.Send(context.Background(), "hi")

	assert.Equal(t, 3, s1.Chat.Len())
	assert.Equal(t, 1, s2.Chat.Len())
}

func TestApp_CloseIsIdempotent(t *testing.T) {
	a := New(common.NewDefaultConfig(), common.NewSilentLogger(), nil)
	a.StartSessionSweeper()
	a.Close()
	a.Close()
}

type countingSweeper struct {
	calls   atomic.Int32
	removed int
}

func (c *countingSweeper) Sweep(maxIdle time.Duration) int {
	c.calls.Add(1)
	return c.removed
}

func TestSweepSessions_ReturnsRemoved(t *testing.T) {
	s := &countingSweeper{removed: 2}
	assert.Equal(t, 2, sweepSessions(s, common.NewSilentLogger(), time.Hour))
	assert.Equal(t, int32(1), s.calls.Load())
}

func TestStartSessionSweeper_StopsOnCancel(t *testing.T) {
	s := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		startSessionSweeper(ctx, s, common.NewSilentLogger(), 5*time.Millisecond, time.Hour)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/investiq/internal/app"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/models"
)

type fakeConversation struct {
	reply string
	err   error
}

func (c *fakeConversation) Send(ctx context.Context, text string) (string, error) {
	return c.reply, c.err
}

type fakeStarter struct {
	conv *fakeConversation
}

func (f *fakeStarter) StartConversation(ctx context.Context, history []models.ChatMessage, maxOutputTokens int) (interfaces.Conversation, error) {
	return f.conv, nil
}

func newTestServer(t *testing.T, backend interfaces.ConversationStarter) *Server {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Session.JWTSecret = "test-secret"
	cfg.Chat.RatePerMinute = 0
	a := app.New(cfg, common.NewSilentLogger(), backend)
	t.Cleanup(a.Close)
	return NewServer(a)
}

func do(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func createSession(t *testing.T, s *Server) string {
	t.Helper()
	rr := do(t, s, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[sessionResponse](t, rr).Token
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rr)["status"])

	rr = do(t, s, http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, common.GetVersion(), decode[map[string]string](t, rr)["version"])

	rr = do(t, s, http.MethodPost, "/api/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Header().Get("Allow"), "GET")
}

func TestConfig_MasksAPIKey(t *testing.T) {
	s := newTestServer(t, nil)
	s.app.Config.Clients.Gemini.APIKey = "AIzaSecretValue"

	rr := do(t, s, http.MethodGet, "/api/config", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "SecretValue")
	assert.Contains(t, rr.Body.String(), "AIza****")
}

func TestDiagnostics_ReportsSessions(t *testing.T) {
	s := newTestServer(t, nil)
	createSession(t, s)
	createSession(t, s)

	rr := do(t, s, http.MethodGet, "/api/diagnostics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[map[string]any](t, rr)
	assert.Equal(t, float64(2), body["active_sessions"])
	assert.Equal(t, false, body["chat_enabled"])
}

func TestSession_CreateStartsOnLanding(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decode[sessionResponse](t, rr)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.PageLanding, resp.Snapshot.Page)
	assert.False(t, resp.Snapshot.Authenticated)
	assert.False(t, resp.Snapshot.ShowChat)

	rr = do(t, s, http.MethodGet, "/api/session", resp.Token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.PageLanding, decode[models.Snapshot](t, rr).Page)
}

func TestSession_RequiresToken(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/api/session", "/api/page", "/api/advisor", "/api/chat"} {
		rr := do(t, s, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.Equal(t, "session_required", decode[ErrorResponse](t, rr).Code, path)
	}
}

func TestSession_InvalidTokenRejected(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodGet, "/api/session", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "invalid_token")

	other := common.NewDefaultConfig()
	other.Session.JWTSecret = "another-secret"
	forged, _, err := signSessionToken("some-session", other, time.Now())
	require.NoError(t, err)

	rr = do(t, s, http.MethodGet, "/api/session", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSession_DeleteInvalidatesToken(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodDelete, "/api/session", token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, s, http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "session_not_found", decode[ErrorResponse](t, rr).Code)
}

func TestSession_SweptSessionIsUnauthorized(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	assert.Equal(t, 1, s.app.Sessions.Sweep(-time.Second))

	rr := do(t, s, http.MethodGet, "/api/page", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSession_IsolatedBetweenClients(t *testing.T) {
	s := newTestServer(t, nil)
	a := createSession(t, s)
	b := createSession(t, s)

	do(t, s, http.MethodPost, "/api/nav/get-started", a, nil)

	rr := do(t, s, http.MethodGet, "/api/session", b, nil)
	assert.Equal(t, models.PageLanding, decode[models.Snapshot](t, rr).Page)
}

func TestNav_LoginLogoutFlow(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/nav/get-started", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.PageLogin, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodPost, "/api/auth/login", token, loginRequest{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	snap := decode[models.Snapshot](t, rr)
	assert.Equal(t, models.PageDashboard, snap.Page)
	assert.True(t, snap.Authenticated)
	assert.Equal(t, "Asha Rao", snap.User.Name)
	assert.True(t, snap.ShowHeader)
	assert.True(t, snap.ShowChat)

	rr = do(t, s, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decode[models.Snapshot](t, rr)
	assert.Equal(t, models.PageLanding, snap.Page)
	assert.False(t, snap.Authenticated)
}

func TestNav_LoginRequiresCredentials(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/auth/login", token, loginRequest{Email: "asha@example.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, s, http.MethodGet, "/api/session", token, nil)
	assert.False(t, decode[models.Snapshot](t, rr).Authenticated)
}

func TestNav_LoginDerivesNameFromEmail(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/auth/login", token, loginRequest{Email: "ravi@example.com", Password: "x"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ravi", decode[models.Snapshot](t, rr).User.Name)
}

func TestNav_LearnMoreAndBack(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/nav/learn-more", token, nil)
	assert.Equal(t, models.PageBeginnerGuide, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodPost, "/api/nav/back-to-landing", token, nil)
	assert.Equal(t, models.PageLanding, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodPost, "/api/nav/back-to-dashboard", token, nil)
	assert.Equal(t, models.PageDashboard, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodPost, "/api/nav/sideways", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNav_NavigateUnknownPageLeavesState(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/nav/navigate", token, navigateRequest{Page: "goals"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.PageGoals, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodPost, "/api/nav/navigate", token, navigateRequest{Page: "settings"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "unknown_page", decode[ErrorResponse](t, rr).Code)

	rr = do(t, s, http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, models.PageGoals, decode[models.Snapshot](t, rr).Page)
}

func TestNav_InvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/nav/navigate", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNav_StockClickThenPage(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/nav/stock", token, stockClickRequest{Symbol: "msft"})
	require.Equal(t, http.StatusOK, rr.Code)
	snap := decode[models.Snapshot](t, rr)
	assert.Equal(t, models.PageStockDetails, snap.Page)
	assert.Equal(t, "MSFT", snap.SelectedSymbol)

	rr = do(t, s, http.MethodGet, "/api/page", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Page models.Page         `json:"page"`
		Data models.StockDetails `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.PageStockDetails, resp.Page)
	assert.Equal(t, "MSFT", resp.Data.Quote.Symbol)
	assert.Len(t, resp.Data.Series, models.Range1M.Points())
}

func TestTheme_ToggleAndPublicPages(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/theme/toggle", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	snap := decode[models.Snapshot](t, rr)
	assert.Equal(t, models.ThemeDark, snap.Theme)
	assert.Equal(t, models.ThemeLight, snap.EffectiveTheme)

	rr = do(t, s, http.MethodPost, "/api/nav/back-to-dashboard", token, nil)
	assert.Equal(t, models.ThemeDark, decode[models.Snapshot](t, rr).EffectiveTheme)
}

func TestPages_ByIDDoesNotNavigate(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodGet, "/api/pages/crypto", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Page     models.Page     `json:"page"`
		Snapshot models.Snapshot `json:"snapshot"`
		Data     json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.PageCrypto, resp.Page)
	assert.True(t, resp.Snapshot.ShowChat)
	assert.NotEmpty(t, resp.Data)

	rr = do(t, s, http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, models.PageLanding, decode[models.Snapshot](t, rr).Page)

	rr = do(t, s, http.MethodGet, "/api/pages/nowhere", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPages_EveryPageHasPayload(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	for _, p := range models.AllPages {
		rr := do(t, s, http.MethodGet, "/api/pages/"+string(p), token, nil)
		assert.Equal(t, http.StatusOK, rr.Code, p)
	}
}

func TestStocks_Details(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodGet, "/api/stocks/googl?range=5D", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	d := decode[models.StockDetails](t, rr)
	assert.Equal(t, "GOOGL", d.Quote.Symbol)
	assert.Equal(t, models.Range5D, d.Range)
	assert.Len(t, d.Series, 5)
	assert.NotNil(t, d.Average)

	rr = do(t, s, http.MethodGet, "/api/stocks/googl?range=2W", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_range", decode[ErrorResponse](t, rr).Code)

	rr = do(t, s, http.MethodGet, "/api/stocks/", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, s, http.MethodGet, "/api/stocks/AAPL/filings", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStocks_UnknownSymbolKeepsRequestedSymbol(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodGet, "/api/stocks/tsla", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	d := decode[models.StockDetails](t, rr)
	assert.Equal(t, "TSLA", d.Quote.Symbol)
	assert.Equal(t, "Apple Inc.", d.Quote.Name)
}

func TestStocks_ChartPNG(t *testing.T) {
	s := newTestServer(t, nil)

	rr := do(t, s, http.MethodGet, "/api/stocks/AAPL/chart.png?range=1Y", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestAdvisor_RecommendAndReset(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/advisor/recommend", token, recommendRequest{Amount: 100000, Duration: "short"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decode[advisorResponse](t, rr)
	assert.True(t, resp.State.Visible)
	assert.Len(t, resp.State.Recommendations, 5)
	assert.InDelta(t, 100, resp.TotalAllocation, 1e-9)
	assert.InDelta(t, 100000, resp.TotalAmount, 0.01)
	assert.Equal(t, "NVDA", resp.State.Recommendations[0].Symbol)
	assert.InDelta(t, 25000, resp.State.Recommendations[0].RecommendedAmount, 0.001)

	rr = do(t, s, http.MethodPost, "/api/advisor/recommend", token, recommendRequest{Amount: -5, Duration: "long"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_input", decode[ErrorResponse](t, rr).Code)

	rr = do(t, s, http.MethodGet, "/api/advisor", token, nil)
	state := decode[advisorResponse](t, rr).State
	assert.Equal(t, models.DurationShort, state.Duration)
	assert.Len(t, state.Recommendations, 5)

	rr = do(t, s, http.MethodPost, "/api/advisor/reset", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	reset := decode[advisorResponse](t, rr)
	assert.False(t, reset.State.Visible)
	assert.Empty(t, reset.State.Recommendations)
}

func TestChat_TranscriptAndSend(t *testing.T) {
	s := newTestServer(t, &fakeStarter{conv: &fakeConversation{reply: "Consider an index fund."}})
	token := createSession(t, s)

	rr := do(t, s, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	transcript := decode[chatResponse](t, rr).Transcript
	require.Len(t, transcript, 1)
	assert.Equal(t, models.SenderBot, transcript[0].Sender)

	rr = do(t, s, http.MethodPost, "/api/chat", token, chatRequest{Text: "Where should I start?"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[chatResponse](t, rr)
	require.NotNil(t, resp.Reply)
	assert.Equal(t, "Consider an index fund.", resp.Reply.Text)
	assert.False(t, resp.Degraded)
	assert.Len(t, resp.Transcript, 3)
}

func TestChat_BlankIsSkipped(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/chat", token, chatRequest{Text: "   "})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[chatResponse](t, rr)
	assert.True(t, resp.Skipped)
	assert.Nil(t, resp.Reply)
	assert.Len(t, resp.Transcript, 1)
}

func TestChat_FailureFallsBack(t *testing.T) {
	s := newTestServer(t, &fakeStarter{conv: &fakeConversation{err: errors.New("upstream 503")}})
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/chat", token, chatRequest{Text: "hello"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[chatResponse](t, rr)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "upstream_error", resp.Reason)
	require.NotNil(t, resp.Reply)
	assert.Equal(t, models.SenderBot, resp.Reply.Sender)
	assert.Len(t, resp.Transcript, 3)
}

func TestChat_NoBackend(t *testing.T) {
	s := newTestServer(t, nil)
	token := createSession(t, s)

	rr := do(t, s, http.MethodPost, "/api/chat", token, chatRequest{Text: "hello"})
	resp := decode[chatResponse](t, rr)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "unavailable", resp.Reason)
}

package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/infra/backend"
	mockUsecase "mycloudmen/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticTokenSource struct{ token string }

func (s staticTokenSource) Token(context.Context) (string, error)   { return s.token, nil }
func (s staticTokenSource) Refresh(context.Context) (string, error) { return s.token, nil }

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{CookieName: "mycloudmen_sid", CookieSecure: true, TTL: 8 * time.Hour}
	cfg.RateLimit = config.RateLimitConfig{LoginPerMinute: 1, LoginBurst: 2}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captured is what a handler behind the middleware chain observed.
type captured struct {
	sessionID   string
	requestID   string
	tokenSource bool
}

func serve(t *testing.T, identity *mockUsecase.MockIdentityUsecase, req *http.Request) (*httptest.ResponseRecorder, captured) {
	t.Helper()

	var got captured
	e := echo.New()
	e.Use(NewRequestIDMiddleware(discardLogger()).Process)
	e.Use(NewSessionMiddleware(identity, newConfig(), discardLogger()).Process)
	e.GET("/probe", func(c echo.Context) error {
		ctx := c.Request().Context()
		got = captured{
			sessionID:   deliverycontext.GetSessionIDFromContext(ctx),
			requestID:   deliverycontext.GetRequestIDFromContext(ctx),
			tokenSource: backend.TokenSourceFrom(ctx) != nil,
		}
		assert.Equal(t, got.sessionID, deliverycontext.GetSessionID(c))

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, got
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	identity := mockUsecase.NewMockIdentityUsecase(t)
	identity.EXPECT().TokenSource(mock.Anything).Return(staticTokenSource{token: "at"}).Once()

	rec, got := serve(t, identity, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mycloudmen_sid", cookies[0].Name)
	assert.Equal(t, got.sessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, int((8 * time.Hour).Seconds()), cookies[0].MaxAge)
	assert.True(t, got.tokenSource)

	_, err := uuid.Parse(got.sessionID)
	assert.NoError(t, err)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	sid := uuid.NewString()
	identity := mockUsecase.NewMockIdentityUsecase(t)
	identity.EXPECT().TokenSource(sid).Return(staticTokenSource{token: "at"}).Once()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "mycloudmen_sid", Value: sid})
	rec, got := serve(t, identity, req)

	assert.Equal(t, sid, got.sessionID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_ReplacesForgedCookie(t *testing.T) {
	identity := mockUsecase.NewMockIdentityUsecase(t)
	identity.EXPECT().TokenSource(mock.Anything).Return(staticTokenSource{}).Once()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "mycloudmen_sid", Value: "../../admin"})
	rec, got := serve(t, identity, req)

	assert.NotEqual(t, "../../admin", got.sessionID)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestRequestIDMiddleware(t *testing.T) {
	identity := mockUsecase.NewMockIdentityUsecase(t)
	identity.EXPECT().TokenSource(mock.Anything).Return(staticTokenSource{}).Twice()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec, got := serve(t, identity, req)
	assert.Equal(t, "req-42", got.requestID)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, got = serve(t, identity, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.NotEmpty(t, got.requestID)
	assert.Equal(t, got.requestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoginRateLimiter(t *testing.T) {
	limiter := NewLoginRateLimiter(newConfig())

	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	handler := limiter.Limit(ok)

	call := func(ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
		req.RemoteAddr = ip + ":1234"

		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	assert.NoError(t, call("10.0.0.1"))
	assert.NoError(t, call("10.0.0.1"))
	assert.ErrorIs(t, call("10.0.0.1"), domainerrors.ErrTooManyRequests)

	// Budgets are per client.
	assert.NoError(t, call("10.0.0.2"))
}

func TestLoggerMiddleware_HandsErrorsToErrorHandler(t *testing.T) {
	cfg := newConfig()
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(discardLogger(), cfg).Handle)
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

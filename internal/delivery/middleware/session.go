package middleware

import (
	"log/slog"
	"net/http"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/infra/backend"
	"mycloudmen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware binds every request to a gateway session. The browser only
// ever holds the opaque session id; tokens and profile stay server side.
type SessionMiddleware struct {
	identity usecase.IdentityUsecase
	cfg      config.SessionConfig
	logger   *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(identity usecase.IdentityUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		identity: identity,
		cfg:      cfg.Session,
		logger:   logger,
	}
}

// Process must run after the request ID middleware so the session logger
// inherits the request id.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := m.readCookie(c)
		if !ok {
			sessionID = uuid.NewString()
			c.SetCookie(m.newCookie(sessionID))
		}

		deliverycontext.SetSessionID(c, sessionID)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("session_id", sessionID))
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, logger)
		ctx = backend.WithTokenSource(ctx, m.identity.TokenSource(sessionID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// readCookie accepts only ids the gateway could have issued.
func (m *SessionMiddleware) readCookie(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

func (m *SessionMiddleware) newCookie(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		MaxAge:   int(m.cfg.TTL.Seconds()),
		Secure:   m.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

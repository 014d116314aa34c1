package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"mycloudmen/internal/infra/backend"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

const backendPrefix = "/api/backend"

// BackendProxy forwards /api/backend/* to the backend through the client's
// auth transport, so proxied calls get the session's bearer token and the
// one-shot refresh on 401.
type BackendProxy struct {
	target    *url.URL
	transport http.RoundTripper
	logger    *slog.Logger
}

// NewBackendProxy is the constructor for BackendProxy.
func NewBackendProxy(client *backend.Client, logger *slog.Logger) (*BackendProxy, error) {
	target, err := url.Parse(client.BaseURL())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend base url %q", client.BaseURL())
	}

	return &BackendProxy{
		target:    target,
		transport: client.Transport(),
		logger:    logger,
	}, nil
}

// Middlewares returns the body buffering and proxy middleware, in order.
func (p *BackendProxy) Middlewares() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		prepareProxyRequest,
		echomiddleware.ProxyWithConfig(echomiddleware.ProxyConfig{
			Balancer: echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{
				{Name: "backend", URL: p.target},
			}),
			Rewrite: map[string]string{
				backendPrefix + "/*": "/$1",
			},
			Transport: p.transport,
			ErrorHandler: func(c echo.Context, err error) error {
				p.logger.WarnContext(c.Request().Context(), "Backend proxy failed", slog.Any("error", err))

				return err
			},
		}),
	}
}

// prepareProxyRequest drops the browser cookies and buffers the request body
// so the auth transport can resend it after a token refresh. The body is
// already bounded by the body limit.
func prepareProxyRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		req.Header.Del("Cookie")

		if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
			return next(c)
		}

		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
		}
		_ = req.Body.Close()

		req.Body = io.NopCloser(bytes.NewReader(raw))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(raw)), nil
		}

		return next(c)
	}
}

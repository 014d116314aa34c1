// Package backend is the REST client of the MyCLOUDMEN backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxErrorBodyBytes = 4 << 10

// StatusError is a backend answer outside the mapped statuses.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Client calls the backend through the AuthTransport interceptor.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	maxAttempts    int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

// ClientParams holds dependencies for the backend client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds the client from the backend config section.
func NewClient(params ClientParams) (*Client, error) {
	cfg := params.Config.Backend
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid backend base url %q", cfg.BaseURL)
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: NewAuthTransport(newPooledTransport()),
	}

	return New(cfg.BaseURL, httpClient, cfg.Retry.MaxAttempts, cfg.Retry.BaseDelay, params.Logger), nil
}

// New builds a client around httpClient. The caller owns the transport chain.
func New(baseURL string, httpClient *http.Client, maxAttempts int, retryBaseDelay time.Duration, logger *slog.Logger) *Client {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		maxAttempts:    maxAttempts,
		retryBaseDelay: retryBaseDelay,
		logger:         logger,
	}
}

// Transport returns the interceptor chain, shared with the backend proxy.
func (c *Client) Transport() http.RoundTripper {
	return c.httpClient.Transport
}

// BaseURL returns the backend origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func newPooledTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
		ForceAttemptHTTP2:     true,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// do sends one request and decodes a 2xx body into out.
// 401, 404, 429 and 5xx map onto the service sentinels.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", op)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", op)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequests.WithLabelValues(op, "transport_error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "%s", op)
		}
		// The session's token source failed, typically because the session ended.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return errors.Wrapf(err, "%s", op)
		}

		return errors.Wrapf(service.ErrBackendUnavailable, "%s: %v", op, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return decodeBody(op, resp.Body, out)
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.Wrapf(service.ErrUnauthorized, "%s", op)
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(service.ErrNotFound, "%s", op)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return errors.Wrapf(service.ErrBackendUnavailable, "%s: status %d", op, resp.StatusCode)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.WithStack(&StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))})
	}
}

func decodeBody(op string, body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)

		return nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrapf(service.ErrBackendUnavailable, "%s: read body: %v", op, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "%s: decode response", op)
	}

	return nil
}

package backend

import (
	"context"
	"io"
	"net/http"

	"mycloudmen/internal/domain/service"
)

type tokenSourceKey struct{}

// WithTokenSource attaches the session's token source to outbound calls made with ctx.
func WithTokenSource(ctx context.Context, ts service.TokenSource) context.Context {
	return context.WithValue(ctx, tokenSourceKey{}, ts)
}

// TokenSourceFrom returns the token source attached to ctx, or nil.
func TokenSourceFrom(ctx context.Context) service.TokenSource {
	ts, _ := ctx.Value(tokenSourceKey{}).(service.TokenSource)

	return ts
}

// AuthTransport is the outbound interceptor of every backend call. It applies
// the standard headers, injects the bearer token of the request's session and
// answers a 401 with exactly one refresh-and-retry.
type AuthTransport struct {
	Base http.RoundTripper
}

// NewAuthTransport wraps base, or http.DefaultTransport when base is nil.
func NewAuthTransport(base http.RoundTripper) *AuthTransport {
	return &AuthTransport{Base: base}
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}

	return http.DefaultTransport
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	ts := TokenSourceFrom(ctx)

	out := req.Clone(ctx)
	applyStandardHeaders(out.Header)

	if ts != nil {
		token, err := ts.Token(ctx)
		if err != nil {
			return nil, err
		}
		setBearer(out.Header, token)
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil || ts == nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	retry, ok := rewind(req)
	if !ok {
		return resp, nil
	}

	token, refreshErr := ts.Refresh(ctx)
	if refreshErr != nil || token == "" {
		return resp, nil
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	applyStandardHeaders(retry.Header)
	setBearer(retry.Header, token)

	return t.base().RoundTrip(retry)
}

func applyStandardHeaders(h http.Header) {
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	if h.Get("Accept") == "" {
		h.Set("Accept", "application/json")
	}
	h.Set("Cache-Control", "no-cache")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

func setBearer(h http.Header, token string) {
	if token == "" {
		h.Del("Authorization")

		return
	}
	h.Set("Authorization", "Bearer "+token)
}

// rewind clones req for a second attempt. Requests whose body cannot be
// replayed are not retried.
func rewind(req *http.Request) (*http.Request, bool) {
	retry := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body

	return retry, true
}

package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"mycloudmen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenSource struct {
	token      string
	refreshed  string
	refreshErr error
	refreshes  atomic.Int32
}

func (f *fakeTokenSource) Token(context.Context) (string, error) {
	return f.token, nil
}

func (f *fakeTokenSource) Refresh(context.Context) (string, error) {
	f.refreshes.Add(1)
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	f.token = f.refreshed

	return f.refreshed, nil
}

func TestAuthTransport_InjectsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil)}
	ctx := WithTokenSource(context.Background(), &fakeTokenSource{token: "at-1"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer at-1", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "no-cache", got.Get("Cache-Control"))
	assert.Equal(t, "no-cache", got.Get("Pragma"))
	assert.Equal(t, "0", got.Get("Expires"))
	assert.Empty(t, req.Header.Get("Authorization"), "caller request must not be mutated")
}

func TestAuthTransport_KeepsExplicitContentType(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil)}
	req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader("a=b"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/x-www-form-urlencoded", got)
}

func TestAuthTransport_RefreshesOnceOn401(t *testing.T) {
	var calls atomic.Int32
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ts := &fakeTokenSource{token: "stale", refreshed: "fresh"}
	client := &http.Client{Transport: NewAuthTransport(nil)}
	req, err := http.NewRequestWithContext(WithTokenSource(context.Background(), ts), http.MethodPost, srv.URL, strings.NewReader(`{"x":1}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int32(1), ts.refreshes.Load())
	assert.Equal(t, []string{`{"x":1}`, `{"x":1}`}, bodies)
}

func TestAuthTransport_SecondUnauthorizedIsReturned(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ts := &fakeTokenSource{token: "stale", refreshed: "still-bad"}
	httpClient := &http.Client{Transport: NewAuthTransport(nil)}
	client := New(srv.URL, httpClient, 3, 0, newDiscardLogger())

	_, err := client.FetchProfile(WithTokenSource(context.Background(), ts), "sub")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.Equal(t, int32(2), calls.Load(), "one original call and one retry, no backoff loop")
	assert.Equal(t, int32(1), ts.refreshes.Load())
}

func TestAuthTransport_RefreshFailureKeeps401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ts := &fakeTokenSource{token: "stale", refreshErr: errors.New("refresh token revoked")}
	client := &http.Client{Transport: NewAuthTransport(nil)}
	req, err := http.NewRequestWithContext(WithTokenSource(context.Background(), ts), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthTransport_UnreplayableBodyIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ts := &fakeTokenSource{token: "stale", refreshed: "fresh"}
	client := &http.Client{Transport: NewAuthTransport(nil)}
	req, err := http.NewRequestWithContext(WithTokenSource(context.Background(), ts), http.MethodPost, srv.URL, io.NopCloser(strings.NewReader("stream")))
	require.NoError(t, err)
	req.GetBody = nil

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, int32(1), calls.Load())
	assert.Zero(t, ts.refreshes.Load())
}

func TestAuthTransport_NoTokenSourceSendsNoAuthorization(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil)}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, got)
}

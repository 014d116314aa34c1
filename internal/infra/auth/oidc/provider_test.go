package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"mycloudmen/config"
	"mycloudmen/internal/domain/service"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID   = "test-key"
	testIssuer  = "https://idp.test/"
	testClient  = "mycloudmen-admin"
	testSubject = "google-oauth2|42"
)

func generateTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func buildJWKSetJSON(pub *rsa.PublicKey) json.RawMessage {
	jwks := map[string]any{
		"keys": []map[string]any{{
			"kty": "RSA",
			"kid": testKeyID,
			"use": "sig",
			"alg": "RS256",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	}
	data, _ := json.Marshal(jwks)

	return data
}

func signIDToken(t *testing.T, key *rsa.PrivateKey, mutate func(jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":            testSubject,
		"iss":            testIssuer,
		"aud":            testClient,
		"email":          "ada@acme.com",
		"email_verified": true,
		"name":           "Ada",
		"exp":            jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat":            jwt.NewNumericDate(time.Now()),
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func testConfig(tokenURL string) *config.OIDCConfig {
	return &config.OIDCConfig{
		Issuer:        testIssuer,
		ClientID:      testClient,
		ClientSecret:  "secret",
		Audience:      "https://api.mycloudmen.test",
		AuthURL:       "https://idp.test/authorize",
		TokenURL:      tokenURL,
		JWKSURL:       "https://idp.test/.well-known/jwks.json",
		EndSessionURL: "https://idp.test/v2/logout",
		RedirectURL:   "http://localhost:8080/auth/callback",
		PostLogoutURL: "http://localhost:5173/",
		Scopes:        []string{"openid", "profile", "email", "offline_access"},
	}
}

func newTestProvider(t *testing.T, key *rsa.PrivateKey, tokenURL string) *Provider {
	t.Helper()

	kf, err := keyfunc.NewJWKSetJSON(buildJWKSetJSON(&key.PublicKey))
	require.NoError(t, err)

	return NewProviderWithKeyfunc(testConfig(tokenURL), kf.Keyfunc, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := newTestProvider(t, generateTestKey(t), "https://idp.test/oauth/token")

	raw := p.AuthCodeURL("state-1", "verifier-1")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "idp.test", u.Host)
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.NotEqual(t, "verifier-1", q.Get("code_challenge"))
	assert.Equal(t, "https://api.mycloudmen.test", q.Get("audience"))
	assert.Equal(t, "openid profile email offline_access", q.Get("scope"))
}

func TestProvider_VerifyIDToken(t *testing.T) {
	key := generateTestKey(t)
	p := newTestProvider(t, key, "https://idp.test/oauth/token")
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		claims, err := p.VerifyIDToken(ctx, signIDToken(t, key, nil))
		require.NoError(t, err)
		assert.Equal(t, testSubject, claims.Subject)
		assert.Equal(t, "ada@acme.com", claims.Email)
		assert.True(t, claims.EmailVerified)
		assert.Equal(t, "google-oauth2", claims.Provider())
	})

	tests := []struct {
		name   string
		mutate func(jwt.MapClaims)
	}{
		{name: "expired", mutate: func(c jwt.MapClaims) { c["exp"] = jwt.NewNumericDate(time.Now().Add(-time.Hour)) }},
		{name: "wrong issuer", mutate: func(c jwt.MapClaims) { c["iss"] = "https://evil.test/" }},
		{name: "wrong audience", mutate: func(c jwt.MapClaims) { c["aud"] = "someone-else" }},
		{name: "missing expiry", mutate: func(c jwt.MapClaims) { delete(c, "exp") }},
		{name: "missing subject", mutate: func(c jwt.MapClaims) { delete(c, "sub") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.VerifyIDToken(ctx, signIDToken(t, key, tt.mutate))
			assert.ErrorIs(t, err, service.ErrInvalidIDToken)
		})
	}

	t.Run("signed by another key", func(t *testing.T) {
		_, err := p.VerifyIDToken(ctx, signIDToken(t, generateTestKey(t), nil))
		assert.ErrorIs(t, err, service.ErrInvalidIDToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := p.VerifyIDToken(ctx, "")
		assert.ErrorIs(t, err, service.ErrInvalidIDToken)
	})
}

func TestProvider_ExchangeAndRefresh(t *testing.T) {
	key := generateTestKey(t)
	idToken := signIDToken(t, key, nil)

	var forms []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		forms = append(forms, r.PostForm)

		resp := map[string]any{
			"access_token": "at-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
		}
		if r.PostForm.Get("grant_type") == "authorization_code" {
			resp["refresh_token"] = "rt-1"
			resp["id_token"] = idToken
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := newTestProvider(t, key, srv.URL)
	ctx := context.Background()

	tokens, err := p.Exchange(ctx, "code-1", "verifier-1")
	require.NoError(t, err)
	assert.Equal(t, "at-1", tokens.AccessToken)
	assert.Equal(t, "rt-1", tokens.RefreshToken)
	assert.Equal(t, idToken, tokens.IDToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tokens.Expiry, time.Minute)
	assert.Equal(t, "verifier-1", forms[0].Get("code_verifier"))
	assert.Equal(t, "code-1", forms[0].Get("code"))

	refreshed, err := p.Refresh(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "rt-1", refreshed.RefreshToken, "non-rotating providers keep the old refresh token")
	assert.Empty(t, refreshed.IDToken)
	assert.Equal(t, "refresh_token", forms[1].Get("grant_type"))

	_, err = p.Refresh(ctx, "")
	assert.ErrorIs(t, err, service.ErrRefreshRejected)
}

func TestProvider_RefreshClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		rejected bool
	}{
		{name: "invalid grant", status: http.StatusBadRequest, body: `{"error":"invalid_grant"}`, rejected: true},
		{name: "bare unauthorized", status: http.StatusUnauthorized, body: `{}`, rejected: true},
		{name: "provider outage", status: http.StatusServiceUnavailable, body: `{}`, rejected: false},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"slow_down"}`, rejected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			p := newTestProvider(t, generateTestKey(t), srv.URL)

			_, err := p.Refresh(context.Background(), "rt-1")
			require.Error(t, err)
			assert.Equal(t, tt.rejected, errors.Is(err, service.ErrRefreshRejected))
		})
	}
}

func TestProvider_ExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, generateTestKey(t), srv.URL)
	_, err := p.Exchange(context.Background(), "used-code", "v")
	assert.ErrorContains(t, err, "invalid_grant")
}

func TestProvider_EndSessionURL(t *testing.T) {
	p := newTestProvider(t, generateTestKey(t), "https://idp.test/oauth/token")

	u, err := url.Parse(p.EndSessionURL("id-token"))
	require.NoError(t, err)
	assert.Equal(t, "/v2/logout", u.Path)
	assert.Equal(t, "id-token", u.Query().Get("id_token_hint"))
	assert.Equal(t, "http://localhost:5173/", u.Query().Get("post_logout_redirect_uri"))
	assert.Equal(t, testClient, u.Query().Get("client_id"))

	p.endSessionURL = ""
	assert.Empty(t, p.EndSessionURL("id-token"))
}

func TestNewProvider_NotConfigured(t *testing.T) {
	p, err := NewProvider(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, p)
}

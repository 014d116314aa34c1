// Package oidc adapts a hosted OpenID Connect provider to service.IdentityProvider.
package oidc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"mycloudmen/config"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/service"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const jwksClientTimeout = 10 * time.Second

// idTokenClaims are the ID token claims the gateway reads.
type idTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Provider implements service.IdentityProvider with the authorization code
// flow and RS256 ID tokens verified against the provider JWKS.
type Provider struct {
	oauth         *oauth2.Config
	keyfunc       jwt.Keyfunc
	httpClient    *http.Client
	issuer        string
	clientID      string
	audience      string
	endSessionURL string
	postLogoutURL string
	leeway        time.Duration
	logger        *slog.Logger
}

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider builds the provider from config. A missing oidc section yields a
// nil provider, which callers treat as "not configured".
func NewProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.OIDC
	if cfg == nil {
		params.Logger.Warn("OIDC not configured, login is disabled")

		return nil, nil
	}

	logger := params.Logger.With(slog.String("component", "oidc"))
	httpClient := &http.Client{Timeout: jwksClientTimeout}

	storage, err := jwkset.NewStorageFromHTTP(cfg.JWKSURL, jwkset.HTTPClientStorageOptions{
		Client:                    httpClient,
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           cfg.JWKSRefresh,
		RefreshErrorHandler: func(ctx context.Context, err error) {
			logger.ErrorContext(ctx, "Failed to refresh JWKS",
				slog.String("url", cfg.JWKSURL),
				slog.Any("error", err),
			)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create JWKS storage")
	}

	kf, err := keyfunc.New(keyfunc.Options{Storage: storage})
	if err != nil {
		return nil, errors.Wrap(err, "create JWKS keyfunc")
	}

	return NewProviderWithKeyfunc(cfg, kf.Keyfunc, httpClient, logger), nil
}

// NewProviderWithKeyfunc builds the provider around an explicit key source.
func NewProviderWithKeyfunc(cfg *config.OIDCConfig, kf jwt.Keyfunc, httpClient *http.Client, logger *slog.Logger) *Provider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		keyfunc:       kf,
		httpClient:    httpClient,
		issuer:        cfg.Issuer,
		clientID:      cfg.ClientID,
		audience:      cfg.Audience,
		endSessionURL: cfg.EndSessionURL,
		postLogoutURL: cfg.PostLogoutURL,
		leeway:        cfg.ClockSkewLeeway,
		logger:        logger,
	}
}

func (p *Provider) AuthCodeURL(state, verifier string) string {
	opts := []oauth2.AuthCodeOption{oauth2.S256ChallengeOption(verifier)}
	if p.audience != "" {
		opts = append(opts, oauth2.SetAuthURLParam("audience", p.audience))
	}

	return p.oauth.AuthCodeURL(state, opts...)
}

func (p *Provider) Exchange(ctx context.Context, code, verifier string) (*entity.ProviderTokens, error) {
	token, err := p.oauth.Exchange(p.clientContext(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	return toProviderTokens(token), nil
}

// Refresh redeems refreshToken. Providers that do not rotate refresh tokens
// omit it from the response, so the old one is carried over.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (*entity.ProviderTokens, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(service.ErrRefreshRejected, "no refresh token")
	}

	token, err := p.oauth.TokenSource(p.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		if refreshRejected(err) {
			return nil, errors.WithStack(fmt.Errorf("%w: %w", service.ErrRefreshRejected, err))
		}

		return nil, errors.Wrap(err, "refresh token")
	}

	tokens := toProviderTokens(token)
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	return tokens, nil
}

// VerifyIDToken checks the RS256 signature, issuer, audience and expiry.
func (p *Provider) VerifyIDToken(_ context.Context, rawIDToken string) (*entity.IdentityClaims, error) {
	if rawIDToken == "" {
		return nil, errors.Wrap(service.ErrInvalidIDToken, "missing id token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(p.clientID),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(p.leeway),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &idTokenClaims{}
	if _, err := jwt.ParseWithClaims(rawIDToken, claims, p.keyfunc, opts...); err != nil {
		return nil, errors.Wrapf(service.ErrInvalidIDToken, "%v", err)
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidIDToken, "missing subject")
	}

	return &entity.IdentityClaims{
		Subject:       claims.Subject,
		Issuer:        claims.Issuer,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}

func (p *Provider) EndSessionURL(idTokenHint string) string {
	if p.endSessionURL == "" {
		return ""
	}

	u, err := url.Parse(p.endSessionURL)
	if err != nil {
		p.logger.Warn("Invalid end session URL", slog.String("url", p.endSessionURL))

		return ""
	}

	q := u.Query()
	if idTokenHint != "" {
		q.Set("id_token_hint", idTokenHint)
	}
	if p.postLogoutURL != "" {
		q.Set("post_logout_redirect_uri", p.postLogoutURL)
	}
	q.Set("client_id", p.clientID)
	u.RawQuery = q.Encode()

	return u.String()
}

func (p *Provider) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func toProviderTokens(token *oauth2.Token) *entity.ProviderTokens {
	tokens := &entity.ProviderTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		tokens.IDToken = idToken
	}

	return tokens
}

var _ service.IdentityProvider = (*Provider)(nil)

// refreshRejected reports whether the token endpoint refused the grant itself,
// as opposed to failing to answer.
func refreshRejected(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return false
	}

	switch retrieveErr.ErrorCode {
	case "invalid_grant", "unauthorized_client":
		return true
	case "":
		return retrieveErr.Response != nil &&
			(retrieveErr.Response.StatusCode == http.StatusBadRequest || retrieveErr.Response.StatusCode == http.StatusUnauthorized)
	default:
		return false
	}
}

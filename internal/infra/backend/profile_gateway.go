package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/service"

	"github.com/pkg/errors"
)

var _ service.ProfileGateway = (*Client)(nil)

type registerRequest struct {
	ProviderID string `json:"providerId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Picture    string `json:"picture,omitempty"`
	Provider   string `json:"provider"`
	Domain     string `json:"domain"`
}

type authLogRequest struct {
	UserID     string `json:"userId,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
	Email      string `json:"email,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// FetchProfile GETs the user by provider subject. 404 means not registered yet.
func (c *Client) FetchProfile(ctx context.Context, subject string) (*entity.User, error) {
	user, err := c.fetchUser(ctx, "fetch_profile", "/users/provider/"+url.PathEscape(subject))
	if errors.Is(err, service.ErrNotFound) {
		return nil, errors.Wrapf(service.ErrProfileNotFound, "subject %s", subject)
	}

	return user, err
}

func (c *Client) FetchProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := c.fetchUser(ctx, "fetch_profile_by_email", "/users/email/"+url.PathEscape(email))
	if errors.Is(err, service.ErrNotFound) {
		return nil, errors.Wrapf(service.ErrProfileNotFound, "email %s", email)
	}

	return user, err
}

func (c *Client) fetchUser(ctx context.Context, op, path string) (*entity.User, error) {
	return withRetry(ctx, c, op, func() (*entity.User, error) {
		var user entity.User
		if err := c.do(ctx, op, http.MethodGet, path, nil, &user); err != nil {
			return nil, err
		}

		return &user, nil
	})
}

// RegisterProfile is sent once; registration is not idempotent on the backend.
func (c *Client) RegisterProfile(ctx context.Context, claims entity.IdentityClaims) (*entity.User, error) {
	if claims.Subject == "" {
		return nil, errors.WithStack(service.ErrMissingSubject)
	}

	req := registerRequest{
		ProviderID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		Picture:    claims.Picture,
		Provider:   claims.Provider(),
		Domain:     entity.EmailDomain(claims.Email),
	}

	var user entity.User
	if err := c.do(ctx, "register_profile", http.MethodPost, "/users/register", req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FindCompaniesByDomain asks the by-domain endpoint first and falls back to
// the full listing when that endpoint answers 404.
func (c *Client) FindCompaniesByDomain(ctx context.Context, domain string) ([]entity.Company, error) {
	companies, err := withRetry(ctx, c, "company_by_domain", func() ([]entity.Company, error) {
		var raw json.RawMessage
		if err := c.do(ctx, "company_by_domain", http.MethodGet, "/companies/domain/"+url.PathEscape(domain), nil, &raw); err != nil {
			return nil, err
		}

		return decodeCompanies(raw)
	})
	if !errors.Is(err, service.ErrNotFound) {
		return companies, err
	}

	return withRetry(ctx, c, "list_companies", func() ([]entity.Company, error) {
		var list []entity.Company
		if err := c.do(ctx, "list_companies", http.MethodGet, "/companies", nil, &list); err != nil {
			return nil, err
		}

		return list, nil
	})
}

// decodeCompanies accepts a single company object or a list.
func decodeCompanies(raw json.RawMessage) ([]entity.Company, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []entity.Company
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrap(err, "decode company list")
		}

		return list, nil
	}

	var company entity.Company
	if err := json.Unmarshal(trimmed, &company); err != nil {
		return nil, errors.Wrap(err, "decode company")
	}

	return []entity.Company{company}, nil
}

func (c *Client) LogAuthentication(ctx context.Context, user *entity.User) error {
	req := authLogRequest{UserID: user.ID, ProviderID: user.ProviderID, Email: user.Email}

	return c.do(ctx, "log_authentication", http.MethodPost, "/auth-logs/success", req, nil)
}

func (c *Client) LogAuthenticationFailure(ctx context.Context, reason, email string) error {
	req := authLogRequest{Reason: reason, Email: email}

	return c.do(ctx, "log_authentication_failure", http.MethodPost, "/auth-logs/failure", req, nil)
}

func (c *Client) UpdateUserStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error) {
	return c.mutateUser(ctx, "update_user_status", http.MethodPatch, userPath(userID, "status"), map[string]any{"status": status})
}

func (c *Client) UpdateUserRoles(ctx context.Context, userID string, roles entity.Roles) (*entity.User, error) {
	return c.mutateUser(ctx, "update_user_roles", http.MethodPatch, userPath(userID, "roles"), map[string]any{"roles": roles})
}

func (c *Client) ApproveUser(ctx context.Context, userID string) (*entity.User, error) {
	return c.mutateUser(ctx, "approve_user", http.MethodPost, userPath(userID, "approve"), nil)
}

func (c *Client) RejectUser(ctx context.Context, userID, reason string) (*entity.User, error) {
	return c.mutateUser(ctx, "reject_user", http.MethodPost, userPath(userID, "reject"), map[string]any{"reason": reason})
}

func (c *Client) LastLogin(ctx context.Context, userID string) (*entity.LastLogin, error) {
	return withRetry(ctx, c, "last_login", func() (*entity.LastLogin, error) {
		var last entity.LastLogin
		if err := c.do(ctx, "last_login", http.MethodGet, "/auth-logs/users/"+url.PathEscape(userID)+"/last-login", nil, &last); err != nil {
			return nil, err
		}

		return &last, nil
	})
}

func (c *Client) mutateUser(ctx context.Context, op, method, path string, body any) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, op, method, path, body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func userPath(userID, action string) string {
	return "/users/" + url.PathEscape(userID) + "/" + action
}

package entity

import (
	"net/url"
	"strings"
)

// Redirect targets owned by the admin SPA.
const (
	RoutePendingAccount       = "/pending-account"
	RouteAccountDeactivated   = "/account-deactivated"
	RouteCompanyInactive      = "/company-inactive"
	RouteCompanyNotRegistered = "/company-not-registered"
	RouteAuthError            = "/auth/error"
	RouteAuthLoading          = "/auth/loading"
	RouteAuthLogin            = "/auth/login"
	RouteRoot                 = "/"
)

// RedirectResult is a navigation verdict: where to go and whether the current
// history entry should be replaced.
type RedirectResult struct {
	Path    string            `json:"path"`
	Query   map[string]string `json:"query,omitempty"`
	Replace bool              `json:"replace"`
}

// NewRedirect builds a verdict that replaces the current history entry.
func NewRedirect(path string, query map[string]string) *RedirectResult {
	return &RedirectResult{
		Path:    path,
		Query:   query,
		Replace: true,
	}
}

// URL renders the verdict as a relative URL with an encoded query string.
func (r *RedirectResult) URL() string {
	if r == nil {
		return ""
	}

	if len(r.Query) == 0 {
		return r.Path
	}

	values := make(url.Values, len(r.Query))
	for k, v := range r.Query {
		values.Set(k, v)
	}

	return r.Path + "?" + values.Encode()
}

// Equal compares destination and query, ignoring the replace flag.
func (r *RedirectResult) Equal(other *RedirectResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.URL() == other.URL()
}

// SafeReturnPath accepts only same-origin absolute paths, so a crafted returnTo
// cannot bounce the browser to another site after login.
func SafeReturnPath(raw string) (string, bool) {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return "", false
	}

	return parsed.RequestURI(), true
}

// StatusRedirect maps a blocking account status onto its status page.
// It returns nil for statuses that let the user in.
func StatusRedirect(status UserStatus) *RedirectResult {
	switch status {
	case UserStatusPending:
		return NewRedirect(RoutePendingAccount, nil)
	case UserStatusDeactivated, UserStatusRejected:
		return NewRedirect(RouteAccountDeactivated, map[string]string{"status": string(status)})
	default:
		return nil
	}
}

// PathOf strips the query and fragment from a relative URL.
func PathOf(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}

	return raw
}

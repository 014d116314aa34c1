package usecase

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// DecisionKind is what a navigation check tells the SPA to do.
type DecisionKind string

const (
	DecisionAllow    DecisionKind = "allow"
	DecisionLogin    DecisionKind = "login"
	DecisionRedirect DecisionKind = "redirect"
)

// NavigationDecision is the answer to "may this session show path".
type NavigationDecision struct {
	Kind     DecisionKind           `json:"decision"`
	Redirect *entity.RedirectResult `json:"redirect,omitempty"`
	// Navigate is false for a redirect that was already issued to this session.
	Navigate bool         `json:"navigate"`
	User     *entity.User `json:"user,omitempty"`
}

// GuardUsecase combines the authentication, status and role guards.
type GuardUsecase interface {
	// Evaluate runs every guard for path.
	Evaluate(ctx context.Context, sessionID, path string) (NavigationDecision, error)

	Authenticate(ctx context.Context, sessionID, path string) (NavigationDecision, error)
	AuthorizeRole(user *entity.User, path string) NavigationDecision
	VerifyStatus(ctx context.Context, sessionID string, user *entity.User) (NavigationDecision, error)
}

// StatusPoller rechecks every authenticated session on a timer.
type StatusPoller interface {
	AuthStateObserver

	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// RunOnce checks every tracked session once.
	RunOnce(ctx context.Context)
	Tracked() []string
}

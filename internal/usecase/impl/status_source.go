package impl

import (
	"context"

	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/service"

	"github.com/pkg/errors"
)

var errSourceNotApplicable = errors.New("status source not applicable")

// statusSource is one place the status guard can learn the account status
// from, paired with the extractor that reads the status out of its answer.
type statusSource struct {
	name    string
	network bool
	fetch   func(ctx context.Context, user *entity.User) (*entity.User, error)
	extract func(user *entity.User) (entity.UserStatus, bool)
}

func extractUserStatus(user *entity.User) (entity.UserStatus, bool) {
	if user == nil || !user.Status.IsValid() {
		return "", false
	}

	return user.Status, true
}

// defaultStatusSources asks the backend by email, then by subject, and
// finally falls back to the stored snapshot.
func defaultStatusSources(gateway service.ProfileGateway) []statusSource {
	return []statusSource{
		{
			name:    "by-email",
			network: true,
			fetch: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				if user.Email == "" {
					return nil, errSourceNotApplicable
				}

				return gateway.FetchProfileByEmail(ctx, user.Email)
			},
			extract: extractUserStatus,
		},
		{
			name:    "by-subject",
			network: true,
			fetch: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				if user.ProviderID == "" {
					return nil, errSourceNotApplicable
				}

				return gateway.FetchProfile(ctx, user.ProviderID)
			},
			extract: extractUserStatus,
		},
		{
			name: "cached-local",
			fetch: func(_ context.Context, user *entity.User) (*entity.User, error) {
				return user, nil
			},
			extract: extractUserStatus,
		},
	}
}

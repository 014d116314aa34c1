package impl

import (
	"context"
	"testing"

	"mycloudmen/internal/domain/entity"
	mockService "mycloudmen/internal/mocks/service"
	mockUsecase "mycloudmen/internal/mocks/usecase"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconciliationService_CriticalRedirect(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *entity.User
		company *entity.CompanyStatusResult
		want    string
	}{
		{
			name:    "active user in active company",
			user:    &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated},
			company: &entity.CompanyStatusResult{Status: entity.CompanyStatusActive, Name: "Acme", Domain: "acme.com"},
			want:    "",
		},
		{
			name:    "company not registered",
			user:    &entity.User{Email: "bob@foo.com", Status: entity.UserStatusActivated},
			company: &entity.CompanyStatusResult{Status: entity.CompanyStatusNotFound, Domain: "foo.com"},
			want:    "/company-not-registered?domain=foo.com",
		},
		{
			name:    "suspended company",
			user:    &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated},
			company: &entity.CompanyStatusResult{Status: entity.CompanyStatusSuspended, Name: "Acme", Domain: "acme.com"},
			want:    "/company-inactive?name=Acme&status=SUSPENDED",
		},
		{
			name:    "deactivated company without a name",
			user:    &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated},
			company: &entity.CompanyStatusResult{Status: entity.CompanyStatusDeactivated, Domain: "acme.com"},
			want:    "/company-inactive?status=DEACTIVATED",
		},
		{
			name:    "lookup gave no verdict",
			user:    &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated},
			company: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mockUsecase.NewMockCompanyStatusResolver(t)
			resolver.EXPECT().Resolve(ctx, tt.user).Return(tt.company, nil).Once()

			srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())
			got, err := srv.CriticalRedirect(ctx, tt.user)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.URL())
		})
	}
}

func TestReconciliationService_AccountStatusPrecedesCompany(t *testing.T) {
	ctx := context.Background()

	// No expectations: the resolver must not be consulted.
	resolver := mockUsecase.NewMockCompanyStatusResolver(t)
	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())

	pending, err := srv.CriticalRedirect(ctx, &entity.User{Email: "a@foo.com", Status: entity.UserStatusPending, CompanyStatus: entity.CompanyStatusSuspended})
	require.NoError(t, err)
	assert.Equal(t, "/pending-account", pending.URL())
	assert.True(t, pending.Replace)

	deactivated, err := srv.CriticalRedirect(ctx, &entity.User{Email: "a@foo.com", Status: entity.UserStatusDeactivated})
	require.NoError(t, err)
	assert.Equal(t, "/account-deactivated?status=DEACTIVATED", deactivated.URL())

	rejected, err := srv.CriticalRedirect(ctx, &entity.User{Email: "a@foo.com", Status: entity.UserStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, "/account-deactivated?status=REJECTED", rejected.URL())

	none, err := srv.CriticalRedirect(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestReconciliationService_UnknownDomainEndToEnd(t *testing.T) {
	ctx := context.Background()

	gateway := mockService.NewMockProfileGateway(t)
	gateway.EXPECT().FindCompaniesByDomain(mock.Anything, "foo.com").Return(nil, nil).Once()

	resolver := newTestResolver(t, gateway, newTestStore(t), newFakeClock())
	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())

	user := &entity.User{Email: "bob@foo.com", Status: entity.UserStatusActivated}
	for range 2 {
		got, err := srv.CriticalRedirect(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "/company-not-registered?domain=foo.com", got.URL())
	}
}

func TestReconciliationService_ResolverErrorPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated}
	resolver := mockUsecase.NewMockCompanyStatusResolver(t)
	resolver.EXPECT().Resolve(ctx, user).Return(nil, errors.WithStack(context.Canceled)).Once()

	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())
	_, err := srv.CriticalRedirect(ctx, user)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestReconciliationService_ReconcileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusPending}
	srv := NewReconciliationService(mockUsecase.NewMockCompanyStatusResolver(t), newTestConfig(), discardLogger())

	first, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)
	assert.True(t, first.Navigate)
	assert.Equal(t, "/pending-account", first.Redirect.URL())

	second, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)
	assert.False(t, second.Navigate)
	assert.Equal(t, "/pending-account", second.Redirect.URL())

	// Another session has its own memory.
	other, err := srv.Reconcile(ctx, "sid-2", "/requests", user)
	require.NoError(t, err)
	assert.True(t, other.Navigate)
}

func TestReconciliationService_ReconcileOnTargetPage(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusPending}
	srv := NewReconciliationService(mockUsecase.NewMockCompanyStatusResolver(t), newTestConfig(), discardLogger())

	_, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)

	onTarget, err := srv.Reconcile(ctx, "sid-1", "/pending-account?from=poll", user)
	require.NoError(t, err)
	assert.False(t, onTarget.Navigate)
	assert.Equal(t, "/pending-account", onTarget.Redirect.Path)

	// Leaving the status page again is redirected again.
	away, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)
	assert.True(t, away.Navigate)
}

func TestReconciliationService_NoVerdictResetsMemory(t *testing.T) {
	ctx := context.Background()
	pending := &entity.User{Email: "a@acme.com", Status: entity.UserStatusPending}
	active := &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated, CompanyStatus: entity.CompanyStatusActive}

	resolver := newTestResolver(t, mockService.NewMockProfileGateway(t), newTestStore(t), newFakeClock())
	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())

	_, err := srv.Reconcile(ctx, "sid-1", "/requests", pending)
	require.NoError(t, err)

	none, err := srv.Reconcile(ctx, "sid-1", "/requests", active)
	require.NoError(t, err)
	assert.Equal(t, usecase.ReconcileOutcome{}, none)

	again, err := srv.Reconcile(ctx, "sid-1", "/requests", pending)
	require.NoError(t, err)
	assert.True(t, again.Navigate)
}

func TestReconciliationService_ReconcileSkipsConcurrentPass(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated}

	entered := make(chan struct{})
	release := make(chan struct{})

	resolver := mockUsecase.NewMockCompanyStatusResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, user).
		Run(func(context.Context, *entity.User) {
			close(entered)
			<-release
		}).
		Return(&entity.CompanyStatusResult{Status: entity.CompanyStatusNotFound, Domain: "acme.com"}, nil).
		Once()

	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())

	done := make(chan bool)
	go func() {
		outcome, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
		assert.NoError(t, err)
		done <- outcome.Navigate
	}()

	<-entered
	skipped, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)
	assert.True(t, skipped.Skipped)
	assert.Nil(t, skipped.Redirect)

	close(release)
	assert.True(t, <-done)
}

func TestReconciliationService_OnUnauthenticatedForgetsSession(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusDeactivated}
	srv := NewReconciliationService(mockUsecase.NewMockCompanyStatusResolver(t), newTestConfig(), discardLogger())

	_, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)

	srv.OnUnauthenticated(ctx, "sid-1")

	outcome, err := srv.Reconcile(ctx, "sid-1", "/requests", user)
	require.NoError(t, err)
	assert.True(t, outcome.Navigate)
}

func TestReconciliationService_LandingRoute(t *testing.T) {
	cfg := newTestConfig()
	cfg.Navigation.Landing = map[string]string{"COMPANY_ADMIN": "/users/approvals", "nobody": "/x"}
	srv := NewReconciliationService(mockUsecase.NewMockCompanyStatusResolver(t), cfg, discardLogger())

	tests := []struct {
		name string
		user *entity.User
		want string
	}{
		{name: "no roles", user: &entity.User{Email: "a@acme.com"}, want: "/requests"},
		{name: "nil user", user: nil, want: "/requests"},
		{name: "system admin", user: &entity.User{Roles: entity.Roles{entity.RoleCompanyUser, entity.RoleSystemAdmin}}, want: "/companies"},
		{name: "configured override", user: &entity.User{Roles: entity.Roles{entity.RoleCompanyAdmin}}, want: "/users/approvals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := srv.LandingRoute(tt.user)
			assert.Equal(t, tt.want, got.URL())
			assert.True(t, got.Replace)
		})
	}
}

func TestReconciliationService_ActiveUserWithoutRolesLandsOnRequests(t *testing.T) {
	ctx := context.Background()

	gateway := mockService.NewMockProfileGateway(t)
	gateway.EXPECT().FindCompaniesByDomain(mock.Anything, "acme.com").
		Return([]entity.Company{{Name: "Acme", PrimaryDomain: "acme.com", Status: entity.CompanyStatusActive}}, nil).Once()

	resolver := newTestResolver(t, gateway, newTestStore(t), newFakeClock())
	srv := NewReconciliationService(resolver, newTestConfig(), discardLogger())

	user := &entity.User{Email: "a@acme.com", Status: entity.UserStatusActivated, Roles: entity.Roles{}}
	got, err := srv.CriticalRedirect(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, got)

	landing := srv.LandingRoute(user)
	assert.Equal(t, "/requests", landing.URL())
}

package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/session"
	mockService "mycloudmen/internal/mocks/service"
	mockUsecase "mycloudmen/internal/mocks/usecase"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSID = "sid-1"

type recordingObserver struct {
	mu              sync.Mutex
	authenticated   []string
	unauthenticated []string
}

func (o *recordingObserver) OnAuthenticated(_ context.Context, sessionID string, _ *entity.User) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.authenticated = append(o.authenticated, sessionID)
}

func (o *recordingObserver) OnUnauthenticated(_ context.Context, sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.unauthenticated = append(o.unauthenticated, sessionID)
}

type bridgeFixture struct {
	bridge     *identityBridge
	provider   *mockService.MockIdentityProvider
	profiles   *mockUsecase.MockProfileUsecase
	reconciler *mockUsecase.MockReconciliationUsecase
	audit      *mockUsecase.MockAuditRecorder
	store      *session.Store
	observer   *recordingObserver
	clock      *fakeClock
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()

	f := &bridgeFixture{
		provider:   mockService.NewMockIdentityProvider(t),
		profiles:   mockUsecase.NewMockProfileUsecase(t),
		reconciler: mockUsecase.NewMockReconciliationUsecase(t),
		audit:      mockUsecase.NewMockAuditRecorder(t),
		store:      newTestStore(t),
		observer:   &recordingObserver{},
		clock:      newFakeClock(),
	}

	bridge := NewIdentityBridge(f.provider, f.store, f.profiles, f.reconciler, f.audit, newTestConfig(), discardLogger())
	f.bridge = bridge.(*identityBridge)
	f.bridge.now = f.clock.Now
	f.bridge.Subscribe(f.observer)

	return f
}

func (f *bridgeFixture) startLogin(t *testing.T, returnTo string) *entity.LoginState {
	t.Helper()

	f.provider.EXPECT().AuthCodeURL(mock.Anything, mock.Anything).Return("https://idp.example.com/authorize").Once()
	_, err := f.bridge.Login(context.Background(), testSID, returnTo)
	require.NoError(t, err)

	state, err := f.store.PopLoginState(context.Background(), testSID)
	require.NoError(t, err)
	require.NotNil(t, state)
	require.NoError(t, f.store.SaveLoginState(context.Background(), testSID, state))

	return state
}

func (f *bridgeFixture) saveAuth(t *testing.T, tokens entity.ProviderTokens) {
	t.Helper()

	require.NoError(t, f.store.SaveAuth(context.Background(), testSID, &entity.AuthSession{
		Tokens: tokens,
		Claims: entity.IdentityClaims{Subject: "google-oauth2|42", Email: "a@acme.com"},
	}))
}

func TestIdentityBridge_LoginNotConfigured(t *testing.T) {
	bridge := NewIdentityBridge(nil, newTestStore(t), nil, nil, nil, newTestConfig(), discardLogger())

	_, err := bridge.Login(context.Background(), testSID, "/requests")
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)

	token, err := bridge.AccessToken(context.Background(), testSID)
	assert.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, bridge.IsAuthenticated(context.Background(), testSID))
}

func TestIdentityBridge_LoginStoresStateAndTarget(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t)

	var gotState, gotVerifier string
	f.provider.EXPECT().AuthCodeURL(mock.Anything, mock.Anything).
		Run(func(state, verifier string) {
			gotState, gotVerifier = state, verifier
		}).
		Return("https://idp.example.com/authorize?state=x").Once()

	authURL, err := f.bridge.Login(ctx, testSID, "/users?page=2")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example.com/authorize?state=x", authURL)

	state, err := f.store.PopLoginState(ctx, testSID)
	require.NoError(t, err)
	assert.Equal(t, gotState, state.State)
	assert.Equal(t, gotVerifier, state.Verifier)
	assert.NotEqual(t, state.State, state.Verifier)
	assert.Equal(t, f.clock.Now(), state.CreatedAt)

	target, err := f.store.PopTarget(ctx, testSID)
	require.NoError(t, err)
	assert.Equal(t, "/users?page=2", target)
}

func TestIdentityBridge_LoginIgnoresForeignReturnTo(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t)

	f.provider.EXPECT().AuthCodeURL(mock.Anything, mock.Anything).Return("https://idp.example.com/authorize").Once()

	_, err := f.bridge.Login(ctx, testSID, "https://evil.example/phish")
	require.NoError(t, err)

	target, err := f.store.PopTarget(ctx, testSID)
	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestIdentityBridge_CallbackSuccess(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t)
	login := f.startLogin(t, "/users")

	tokens := &entity.ProviderTokens{AccessToken: "at-1", RefreshToken: "rt-1", IDToken: "id-1", Expiry: f.clock.Now().Add(time.Hour)}
	claims := &entity.IdentityClaims{Subject: "google-oauth2|42", Email: "a@acme.com"}
	user := &entity.User{ID: "u1", Email: "a@acme.com", Status: entity.UserStatusActivated, Roles: entity.Roles{entity.RoleCompanyAdmin}}

	f.provider.EXPECT().Exchange(ctx, "code-1", login.Verifier).Return(tokens, nil).Once()
	f.provider.EXPECT().VerifyIDToken(ctx, "id-1").Return(claims, nil).Once()
	f.profiles.EXPECT().Load(ctx, testSID, *claims).Return(user, nil).Once()
	f.reconciler.EXPECT().CriticalRedirect(ctx, user).Return(nil, nil).Once()

	redirect, err := f.bridge.HandleCallback(ctx, testSID, usecase.CallbackParams{Code: "code-1", State: login.State})
	require.NoError(t, err)
	assert.Equal(t, "/users", redirect.URL())
	assert.True(t, redirect.Replace)

	auth, err := f.store.LoadAuth(ctx, testSID)
	require.NoError(t, err)
	assert.Equal(t, *tokens, auth.Tokens)
	assert.Equal(t, *claims, auth.Claims)
	assert.True(t, f.bridge.IsAuthenticated(ctx, testSID))
	assert.Equal(t, []string{testSID}, f.observer.authenticated)

	// The state is single use.
	leftover, err := f.store.PopLoginState(ctx, testSID)
	require.NoError(t, err)
	assert.Nil(t, leftover)
}

func TestIdentityBridge_CallbackRoutesToCriticalThenLanding(t *testing.T) {
	ctx := context.Background()
	claims := &entity.IdentityClaims{Subject: "google-oauth2|42", Email: "a@acme.com"}
	tokens := &entity.ProviderTokens{AccessToken: "at-1", IDToken: "id-1"}

	t.Run("critical redirect wins over the target", func(t *testing.T) {
		f := newBridgeFixture(t)
		login := f.startLogin(t, "/users")
		user := &entity.User{ID: "u1", Email: "a@acme.com", Status: entity.UserStatusPending}

		f.provider.EXPECT().Exchange(ctx, "code", login.Verifier).Return(tokens, nil).Once()
		f.provider.EXPECT().VerifyIDToken(ctx, "id-1").Return(claims, nil).Once()
		f.profiles.EXPECT().Load(ctx, testSID, *claims).Return(user, nil).Once()
		f.reconciler.EXPECT().CriticalRedirect(ctx, user).Return(entity.StatusRedirect(entity.UserStatusPending), nil).Once()

		redirect, err := f.bridge.HandleCallback(ctx, testSID, usecase.CallbackParams{Code: "code", State: login.State})
		require.NoError(t, err)
		assert.Equal(t, "/pending-account", redirect.URL())
	})

	t.Run("landing route without a target", func(t *testing.T) {
		f := newBridgeFixture(t)
		login := f.startLogin(t, "")
		user := &entity.User{ID: "u1", Email: "a@acme.com", Status: entity.UserStatusActivated, Roles: entity.Roles{entity.RoleSystemAdmin}}

		f.provider.EXPECT().Exchange(ctx, "code", login.Verifier).Return(tokens, nil).Once()
		f.provider.EXPECT().VerifyIDToken(ctx, "id-1").Return(claims, nil).Once()
		f.profiles.EXPECT().Load(ctx, testSID, *claims).Return(user, nil).Once()
		f.reconciler.EXPECT().CriticalRedirect(ctx, user).Return(nil, nil).Once()
		f.reconciler.EXPECT().LandingRoute(user).Return(*entity.NewRedirect("/companies", nil)).Once()

		redirect, err := f.bridge.HandleCallback(ctx, testSID, usecase.CallbackParams{Code: "code", State: login.State})
		require.NoError(t, err)
		assert.Equal(t, "/companies", redirect.URL())
	})
}

func TestIdentityBridge_CallbackFailures(t *testing.T) {
	ctx := context.Background()
	claims := &entity.IdentityClaims{Subject: "google-oauth2|42", Email: "a@acme.com"}
	tokens := &entity.ProviderTokens{AccessToken: "at-1", IDToken: "id-1"}

	tests := []struct {
		name     string
		params   func(login *entity.LoginState) usecase.CallbackParams
		setup    func(f *bridgeFixture, login *entity.LoginState)
		wantCode string
		wantMsg  string
		email    string
	}{
		{
			name: "provider denied access",
			params: func(*entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Error: "access_denied", ErrorDescription: "user cancelled"}
			},
			wantCode: entity.AuthErrorAccessDenied,
			wantMsg:  "user cancelled",
		},
		{
			name: "provider needs interaction",
			params: func(*entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Error: "consent_required"}
			},
			wantCode: entity.AuthErrorLoginRequired,
			wantMsg:  "the identity provider needs you to sign in again",
		},
		{
			name: "unknown provider error",
			params: func(*entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Error: "server_error"}
			},
			wantCode: entity.AuthErrorProviderError,
			wantMsg:  "the identity provider reported an error",
		},
		{
			name: "state mismatch",
			params: func(*entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Code: "code", State: "forged"}
			},
			wantCode: entity.AuthErrorInvalidState,
		},
		{
			name: "missing code",
			params: func(login *entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{State: login.State}
			},
			wantCode: entity.AuthErrorExchangeFailed,
		},
		{
			name: "exchange rejected",
			params: func(login *entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Code: "code", State: login.State}
			},
			setup: func(f *bridgeFixture, login *entity.LoginState) {
				f.provider.EXPECT().Exchange(ctx, "code", login.Verifier).Return(nil, errors.New("invalid_grant")).Once()
			},
			wantCode: entity.AuthErrorExchangeFailed,
		},
		{
			name: "id token rejected",
			params: func(login *entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Code: "code", State: login.State}
			},
			setup: func(f *bridgeFixture, login *entity.LoginState) {
				f.provider.EXPECT().Exchange(ctx, "code", login.Verifier).Return(tokens, nil).Once()
				f.provider.EXPECT().VerifyIDToken(ctx, "id-1").Return(nil, errors.New("bad signature")).Once()
			},
			wantCode: entity.AuthErrorInvalidToken,
		},
		{
			name: "profile unavailable",
			params: func(login *entity.LoginState) usecase.CallbackParams {
				return usecase.CallbackParams{Code: "code", State: login.State}
			},
			setup: func(f *bridgeFixture, login *entity.LoginState) {
				f.provider.EXPECT().Exchange(ctx, "code", login.Verifier).Return(tokens, nil).Once()
				f.provider.EXPECT().VerifyIDToken(ctx, "id-1").Return(claims, nil).Once()
				f.profiles.EXPECT().Load(ctx, testSID, *claims).Return(nil, domainerrors.ErrProfileUnavailable).Once()
			},
			wantCode: entity.AuthErrorProfileFailed,
			email:    "a@acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBridgeFixture(t)
			login := f.startLogin(t, "/users")
			if tt.setup != nil {
				tt.setup(f, login)
			}
			f.audit.EXPECT().RecordFailure(ctx, tt.wantCode, tt.email).Once()

			redirect, err := f.bridge.HandleCallback(ctx, testSID, tt.params(login))
			require.NoError(t, err)
			assert.Equal(t, "/auth/error?code="+tt.wantCode, redirect.URL())

			authErr, err := f.store.PopAuthError(ctx, testSID)
			require.NoError(t, err)
			require.NotNil(t, authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.NotEmpty(t, authErr.Message)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, authErr.Message)
			}

			assert.False(t, f.bridge.IsAuthenticated(ctx, testSID))
			target, err := f.store.PopTarget(ctx, testSID)
			require.NoError(t, err)
			assert.Empty(t, target)
		})
	}
}

func TestIdentityBridge_DuplicateCallbackOnAuthenticatedSession(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t)
	f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1"})

	user := &entity.User{ID: "u1", Email: "a@acme.com", Status: entity.UserStatusActivated}
	f.profiles.EXPECT().Current(ctx, testSID).Return(user, nil).Once()
	f.reconciler.EXPECT().CriticalRedirect(ctx, user).Return(nil, nil).Once()
	f.reconciler.EXPECT().LandingRoute(user).Return(*entity.NewRedirect("/requests", nil)).Once()

	redirect, err := f.bridge.HandleCallback(ctx, testSID, usecase.CallbackParams{Code: "code", State: "already-used"})
	require.NoError(t, err)
	assert.Equal(t, "/requests", redirect.URL())
	assert.True(t, f.bridge.IsAuthenticated(ctx, testSID))
}

func TestIdentityBridge_AccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		f := newBridgeFixture(t)

		_, err := f.bridge.AccessToken(ctx, testSID)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("valid token is returned as is", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", Expiry: f.clock.Now().Add(time.Hour)})

		token, err := f.bridge.AccessToken(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "at-1", token)
	})

	t.Run("expiring token is refreshed", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", RefreshToken: "rt-1", IDToken: "id-1", Expiry: f.clock.Now().Add(10 * time.Second)})

		f.provider.EXPECT().Refresh(mock.Anything, "rt-1").
			Return(&entity.ProviderTokens{AccessToken: "at-2", RefreshToken: "rt-1", Expiry: f.clock.Now().Add(time.Hour)}, nil).Once()

		token, err := f.bridge.AccessToken(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "at-2", token)

		auth, err := f.store.LoadAuth(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "at-2", auth.Tokens.AccessToken)
		assert.Equal(t, "id-1", auth.Tokens.IDToken)

		// Fresh now, no second refresh.
		token, err = f.bridge.AccessToken(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "at-2", token)
	})

	t.Run("refreshed id token updates the claims", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", RefreshToken: "rt-1"})

		newClaims := &entity.IdentityClaims{Subject: "google-oauth2|42", Email: "renamed@acme.com"}
		f.provider.EXPECT().Refresh(mock.Anything, "rt-1").Return(&entity.ProviderTokens{AccessToken: "at-2", IDToken: "id-2"}, nil).Once()
		f.provider.EXPECT().VerifyIDToken(mock.Anything, "id-2").Return(newClaims, nil).Once()

		token, err := f.bridge.RefreshAccessToken(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "at-2", token)

		auth, err := f.store.LoadAuth(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, *newClaims, auth.Claims)
	})
}

func TestIdentityBridge_RefreshFailureEndsSession(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t)
	f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", RefreshToken: "rt-1"})
	require.NoError(t, f.store.SaveUser(ctx, testSID, &entity.User{ID: "u1"}))

	f.provider.EXPECT().Refresh(mock.Anything, "rt-1").Return(nil, errors.Wrap(service.ErrRefreshRejected, "invalid_grant")).Once()

	_, err := f.bridge.TokenSource(testSID).Refresh(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	assert.False(t, f.bridge.IsAuthenticated(ctx, testSID))
	user, err := f.store.LoadUser(ctx, testSID)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, []string{testSID}, f.observer.unauthenticated)
}

func TestIdentityBridge_TransientRefreshFailureKeepsSession(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "caller cancelled", err: context.Canceled},
		{name: "provider unreachable", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBridgeFixture(t)
			f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", RefreshToken: "rt-1"})
			require.NoError(t, f.store.SaveUser(context.Background(), testSID, &entity.User{ID: "u1"}))

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			detached := mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })
			f.provider.EXPECT().Refresh(detached, "rt-1").Return(nil, tt.err).Once()

			_, err := f.bridge.RefreshAccessToken(ctx, testSID)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)

			assert.True(t, f.bridge.IsAuthenticated(context.Background(), testSID))
			user, err := f.store.LoadUser(context.Background(), testSID)
			require.NoError(t, err)
			assert.NotNil(t, user)
			assert.Empty(t, f.observer.unauthenticated)
		})
	}
}

func TestIdentityBridge_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("ends the provider session", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.saveAuth(t, entity.ProviderTokens{AccessToken: "at-1", IDToken: "id-1"})

		f.provider.EXPECT().EndSessionURL("id-1").Return("https://idp.example.com/logout?id_token_hint=id-1").Once()

		next, err := f.bridge.Logout(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "https://idp.example.com/logout?id_token_hint=id-1", next)
		assert.False(t, f.bridge.IsAuthenticated(ctx, testSID))
		assert.Equal(t, []string{testSID}, f.observer.unauthenticated)
	})

	t.Run("without an end session endpoint", func(t *testing.T) {
		f := newBridgeFixture(t)

		f.provider.EXPECT().EndSessionURL("").Return("").Once()

		next, err := f.bridge.Logout(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, "/", next)
	})
}

package impl

import (
	"context"
	"testing"

	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	mockService "mycloudmen/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditRecorder_RecordSuccess(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	clock := newFakeClock()
	gateway := mockService.NewMockProfileGateway(t)
	publisher := mockService.NewMockEventPublisher(t)

	recorder := NewAuditRecorder(gateway, publisher, discardLogger()).(*auditRecorder)
	recorder.now = clock.Now

	user := &entity.User{ID: "u1", ProviderID: "google-oauth2|42", Email: "a@acme.com"}
	gateway.EXPECT().LogAuthentication(ctx, user).Return(errors.New("backend down")).Once()

	var published *entity.AuthAuditEvent
	publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.AuthAuditEvent) { published = event }).
		Return(nil).Once()

	recorder.RecordSuccess(ctx, user)

	if assert.NotNil(t, published) {
		assert.NotEmpty(t, published.ID)
		assert.Equal(t, entity.AuthAuditSuccess, published.Outcome)
		assert.Equal(t, "u1", published.UserID)
		assert.Equal(t, "google-oauth2|42", published.ProviderID)
		assert.Equal(t, "req-1", published.RequestID)
		assert.Equal(t, clock.Now(), published.OccurredAt)
	}
}

func TestAuditRecorder_RecordFailureSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	gateway := mockService.NewMockProfileGateway(t)
	publisher := mockService.NewMockEventPublisher(t)

	gateway.EXPECT().LogAuthenticationFailure(ctx, entity.AuthErrorAccessDenied, "a@acme.com").Return(nil).Once()
	publisher.EXPECT().PublishAuthEvent(ctx, mock.MatchedBy(func(event *entity.AuthAuditEvent) bool {
		return event.Outcome == entity.AuthAuditFailure && event.Reason == entity.AuthErrorAccessDenied && event.UserID == ""
	})).Return(errors.New("topic not found")).Once()

	assert.NotPanics(t, func() {
		NewAuditRecorder(gateway, publisher, discardLogger()).RecordFailure(ctx, entity.AuthErrorAccessDenied, "a@acme.com")
	})
}

func TestAuditRecorder_NilInputs(t *testing.T) {
	ctx := context.Background()
	gateway := mockService.NewMockProfileGateway(t)
	gateway.EXPECT().LogAuthenticationFailure(ctx, "invalid_state", "").Return(nil).Once()

	recorder := NewAuditRecorder(gateway, nil, discardLogger())
	recorder.RecordSuccess(ctx, nil)
	recorder.RecordFailure(ctx, "invalid_state", "")
}

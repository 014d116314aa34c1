// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/usecase"

	"github.com/google/uuid"
)

// auditRecorder writes auth logs to the backend and mirrors them to the event
// publisher. Failures of either are logged and dropped.
type auditRecorder struct {
	gateway   service.ProfileGateway
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// NewAuditRecorder is the constructor for auditRecorder.
func NewAuditRecorder(gateway service.ProfileGateway, publisher service.EventPublisher, logger *slog.Logger) usecase.AuditRecorder {
	return &auditRecorder{
		gateway:   gateway,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (r *auditRecorder) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *auditRecorder) RecordSuccess(ctx context.Context, user *entity.User) {
	if user == nil {
		return
	}

	if err := r.gateway.LogAuthentication(ctx, user); err != nil {
		r.log(ctx).WarnContext(ctx, "Failed to log authentication",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	r.publish(ctx, &entity.AuthAuditEvent{
		Outcome:    entity.AuthAuditSuccess,
		UserID:     user.ID,
		ProviderID: user.ProviderID,
		Email:      user.Email,
	})
}

func (r *auditRecorder) RecordFailure(ctx context.Context, reason, email string) {
	if err := r.gateway.LogAuthenticationFailure(ctx, reason, email); err != nil {
		r.log(ctx).WarnContext(ctx, "Failed to log authentication failure",
			slog.String("reason", reason),
			slog.Any("error", err),
		)
	}

	r.publish(ctx, &entity.AuthAuditEvent{
		Outcome: entity.AuthAuditFailure,
		Email:   email,
		Reason:  reason,
	})
}

func (r *auditRecorder) publish(ctx context.Context, event *entity.AuthAuditEvent) {
	if r.publisher == nil {
		return
	}

	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = r.now().UTC()

	if err := r.publisher.PublishAuthEvent(ctx, event); err != nil {
		r.log(ctx).WarnContext(ctx, "Failed to publish auth event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

package service

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// EventPublisher mirrors authentication audit events to a message queue.
type EventPublisher interface {
	// PublishAuthEvent publishes one audit event
	PublishAuthEvent(ctx context.Context, event *entity.AuthAuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

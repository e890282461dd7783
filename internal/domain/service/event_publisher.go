package service

import (
	"context"

	"beerhaus/internal/domain/entity"
)

// EventPublisher defines the interface for publishing community events to a message queue
type EventPublisher interface {
	// PublishCommunityEvent publishes an announcement or comment event
	PublishCommunityEvent(ctx context.Context, event *entity.CommunityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package ports

import (
	"context"

	"github.com/pairui/mission-board/internal/core/domain"
)

// NotificationInput is the DTO handed from the lifecycle engine to the sink.
type NotificationInput struct {
	RecipientID string
	Message     string
	MissionID   string // empty when the notification has no mission context
}

// NotificationRecorder is the fire-and-forget hook the lifecycle engine calls
// after a committed transition. Implementations must never block the caller
// on persistence; failures are logged, not surfaced.
type NotificationRecorder interface {
	Record(input NotificationInput)
}

// NotificationRepository defines notification persistence.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	DeleteAll(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

// NotificationService defines the sink's use-case operations.
type NotificationService interface {
	// Record persists a notification and bumps the recipient's unread
	// counter. Cache errors are swallowed; only the insert error is returned.
	Record(ctx context.Context, input NotificationInput) error

	List(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteAll(ctx context.Context, recipientID string) error
}

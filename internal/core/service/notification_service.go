package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

// UnreadCache abstracts the unread-counter store (Redis). All cache failures
// are non-fatal; the Mongo collection remains the source of truth.
type UnreadCache interface {
	Incr(ctx context.Context, recipientID string) error
	// Get returns the cached count and whether a cached value exists.
	Get(ctx context.Context, recipientID string) (int64, bool, error)
	Reset(ctx context.Context, recipientID string) error
}

// NotificationService is the notification sink plus its read side.
type notificationService struct {
	repo   ports.NotificationRepository
	unread UnreadCache
	log    zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, unread UnreadCache, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, unread: unread, log: log}
}

// Record persists one notification and bumps the recipient's unread counter.
// The counter bump is best-effort.
func (s *notificationService) Record(ctx context.Context, input ports.NotificationInput) error {
	n := &domain.Notification{
		RecipientID: input.RecipientID,
		Message:     input.Message,
		MissionID:   input.MissionID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return err
	}

	if err := s.unread.Incr(ctx, input.RecipientID); err != nil {
		s.log.Warn().Err(err).Str("recipient_id", input.RecipientID).Msg("unread counter bump failed")
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

// UnreadCount serves the polling endpoint from the cache when possible,
// falling back to a collection count.
func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	count, ok, err := s.unread.Get(ctx, recipientID)
	if err != nil {
		s.log.Warn().Err(err).Str("recipient_id", recipientID).Msg("unread counter read failed")
	} else if ok {
		return count, nil
	}

	count, err = s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead marks a single notification read; only its recipient may do so.
func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID string) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != recipientID {
		return nil, domain.ErrNotAuthorized
	}
	if n.Read {
		return n, nil
	}

	if err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	n.Read = true

	s.resetCounter(ctx, recipientID)
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if _, err := s.repo.MarkAllRead(ctx, recipientID); err != nil {
		return err
	}
	s.resetCounter(ctx, recipientID)
	return nil
}

func (s *notificationService) DeleteAll(ctx context.Context, recipientID string) error {
	if err := s.repo.DeleteAll(ctx, recipientID); err != nil {
		return err
	}
	s.resetCounter(ctx, recipientID)
	return nil
}

// resetCounter drops the cached unread count so the next poll recomputes it.
func (s *notificationService) resetCounter(ctx context.Context, recipientID string) {
	if err := s.unread.Reset(ctx, recipientID); err != nil {
		s.log.Warn().Err(err).Str("recipient_id", recipientID).Msg("unread counter reset failed")
	}
}

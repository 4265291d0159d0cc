package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

type stubNotificationRepo struct {
	byID      map[string]*domain.Notification
	seq       int
	insertErr error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byID: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.seq++
	n.ID = fmt.Sprintf("notif_%d", r.seq)
	clone := *n
	r.byID[n.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) ListByRecipient(_ context.Context, recipientID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.byID {
		if n.RecipientID == recipientID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, recipientID string) (int64, error) {
	var modified int64
	for _, n := range r.byID {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			modified++
		}
	}
	return modified, nil
}

func (r *stubNotificationRepo) DeleteAll(_ context.Context, recipientID string) error {
	for id, n := range r.byID {
		if n.RecipientID == recipientID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range r.byID {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

// stubUnreadCache counts in memory; err poisons every call.
type stubUnreadCache struct {
	counts map[string]int64
	err    error
}

func newStubUnreadCache() *stubUnreadCache {
	return &stubUnreadCache{counts: make(map[string]int64)}
}

func (c *stubUnreadCache) Incr(_ context.Context, recipientID string) error {
	if c.err != nil {
		return c.err
	}
	c.counts[recipientID]++
	return nil
}

func (c *stubUnreadCache) Get(_ context.Context, recipientID string) (int64, bool, error) {
	if c.err != nil {
		return 0, false, c.err
	}
	count, ok := c.counts[recipientID]
	return count, ok, nil
}

func (c *stubUnreadCache) Reset(_ context.Context, recipientID string) error {
	if c.err != nil {
		return c.err
	}
	delete(c.counts, recipientID)
	return nil
}

func record(t *testing.T, svc ports.NotificationService, recipientID, message string) {
	t.Helper()
	err := svc.Record(context.Background(), ports.NotificationInput{
		RecipientID: recipientID,
		Message:     message,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestNotificationService_Record_BumpsCounter(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "hello")
	record(t, svc, "user_1", "again")

	count, err := svc.UnreadCount(context.Background(), "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}
}

func TestNotificationService_Record_CacheFailureIsNonFatal(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	cache.err = errors.New("redis down")
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "hello")

	// The notification itself must be stored.
	items, _ := repo.ListByRecipient(context.Background(), "user_1")
	if len(items) != 1 {
		t.Fatalf("expected 1 stored notification, got %d", len(items))
	}
}

func TestNotificationService_UnreadCount_FallsBackToCollection(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "hello")
	cache.err = errors.New("redis down")

	count, err := svc.UnreadCount(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 from collection fallback, got %d", count)
	}
}

func TestNotificationService_MarkRead_OwnerOnly(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "hello")
	var id string
	for k := range repo.byID {
		id = k
	}

	_, err := svc.MarkRead(context.Background(), "user_2", id)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	n, err := svc.MarkRead(context.Background(), "user_1", id)
	if err != nil {
		t.Fatalf("owner mark read failed: %v", err)
	}
	if !n.Read {
		t.Error("notification must be read")
	}

	// Marking again is idempotent.
	if _, err := svc.MarkRead(context.Background(), "user_1", id); err != nil {
		t.Errorf("second mark read must be a no-op, got %v", err)
	}
}

func TestNotificationService_MarkRead_Unknown(t *testing.T) {
	svc := NewNotificationService(newStubNotificationRepo(), newStubUnreadCache(), discardLogger)

	_, err := svc.MarkRead(context.Background(), "user_1", "missing")
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_MarkAllRead_ResetsCounter(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "one")
	record(t, svc, "user_1", "two")

	if err := svc.MarkAllRead(context.Background(), "user_1"); err != nil {
		t.Fatal(err)
	}

	count, _ := svc.UnreadCount(context.Background(), "user_1")
	if count != 0 {
		t.Errorf("expected 0 unread after mark-all, got %d", count)
	}
}

func TestNotificationService_DeleteAll(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	record(t, svc, "user_1", "one")
	record(t, svc, "user_2", "keep")

	if err := svc.DeleteAll(context.Background(), "user_1"); err != nil {
		t.Fatal(err)
	}

	mine, _ := svc.List(context.Background(), "user_1")
	if len(mine) != 0 {
		t.Errorf("expected empty inbox, got %d", len(mine))
	}
	theirs, _ := svc.List(context.Background(), "user_2")
	if len(theirs) != 1 {
		t.Errorf("other users' notifications must survive, got %d", len(theirs))
	}
}

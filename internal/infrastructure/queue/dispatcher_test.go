package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

// recordingService captures delivered notifications.
type recordingService struct {
	mu       sync.Mutex
	messages []string
}

func (s *recordingService) Record(_ context.Context, input ports.NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, input.Message)
	return nil
}

func (s *recordingService) List(context.Context, string) ([]*domain.Notification, error) {
	return nil, nil
}
func (s *recordingService) UnreadCount(context.Context, string) (int64, error) { return 0, nil }
func (s *recordingService) MarkRead(context.Context, string, string) (*domain.Notification, error) {
	return nil, nil
}
func (s *recordingService) MarkAllRead(context.Context, string) error { return nil }
func (s *recordingService) DeleteAll(context.Context, string) error   { return nil }

func (s *recordingService) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversRecords(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(ports.NotificationInput{RecipientID: "user_1", Message: "hello"})
	d.Record(ports.NotificationInput{RecipientID: "user_2", Message: "world"})

	waitFor(t, func() bool { return len(svc.snapshot()) == 2 })
}

func TestDispatcher_SameRecipientKeepsOrder(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 50
	for i := 0; i < n; i++ {
		d.Record(ports.NotificationInput{
			RecipientID: "user_1",
			Message:     fmt.Sprintf("msg_%d", i),
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == n })

	// One recipient hashes to one worker, so delivery order matches record order.
	got := svc.snapshot()
	for i := 0; i < n; i++ {
		if got[i] != fmt.Sprintf("msg_%d", i) {
			t.Fatalf("order broken at %d: got %q", i, got[i])
		}
	}
}

func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())
	// Not started: channels fill up and further records must be dropped,
	// not block the caller.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(ports.NotificationInput{RecipientID: "user_1", Message: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	first := d.shardIndex("user_42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user_42") != first {
			t.Fatal("shard index must be deterministic per recipient")
		}
	}
}

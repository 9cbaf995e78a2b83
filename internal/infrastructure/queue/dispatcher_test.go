package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

type stubProcessor struct {
	mu        sync.Mutex
	processed []string
	done      chan struct{}
	want      int
}

func newStubProcessor(want int) *stubProcessor {
	return &stubProcessor{done: make(chan struct{}), want: want}
}

func (s *stubProcessor) Checkout(context.Context, string, string) (*ports.CheckoutResult, error) {
	return nil, nil
}

func (s *stubProcessor) Process(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, orderID)
	if len(s.processed) == s.want {
		close(s.done)
	}
	return nil
}

func (s *stubProcessor) ListOrders(context.Context, string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubProcessor) ListAllOrders(context.Context) ([]domain.Order, error) {
	return nil, nil
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("order-123")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("order-123"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_ProcessesEnqueuedOrders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	processor := newStubProcessor(3)
	d := NewDispatcher(2, processor, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue("o1")
	d.Enqueue("o2")
	d.Enqueue("o3")

	select {
	case <-processor.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("orders not processed in time: %v", processor.processed)
	}

	seen := make(map[string]bool)
	processor.mu.Lock()
	for _, id := range processor.processed {
		seen[id] = true
	}
	processor.mu.Unlock()
	for _, id := range []string{"o1", "o2", "o3"} {
		if !seen[id] {
			t.Fatalf("order %s never processed", id)
		}
	}
}

func TestDispatcher_EnqueueDropsWhenBufferFull(t *testing.T) {
	// Workers never started, so the single buffer fills up and every
	// extra Enqueue must return instead of blocking the caller.
	d := NewDispatcher(1, nil, zerolog.Nop())

	for i := 0; i < channelBuffer+5; i++ {
		d.Enqueue("o1")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer at capacity %d, got %d", channelBuffer, got)
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/nvoss/staff-mesh/internal/domain/event"
	portbus "github.com/nvoss/staff-mesh/internal/port/eventbus"
)

// Bus is an in-process event bus. Handlers run synchronously on the
// publisher's goroutine.
type Bus struct {
	mu   sync.RWMutex
	subs map[event.Channel]map[*busSubscription]portbus.Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[event.Channel]map[*busSubscription]portbus.Handler)}
}

func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	b.mu.RLock()
	handlers := make([]portbus.Handler, 0, len(b.subs[event.ChannelFor(e.Type)]))
	for _, h := range b.subs[event.ChannelFor(e.Type)] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *Bus) Subscribe(_ context.Context, ch event.Channel, handler portbus.Handler) (portbus.Subscription, error) {
	sub := &busSubscription{bus: b, ch: ch}

	b.mu.Lock()
	if b.subs[ch] == nil {
		b.subs[ch] = make(map[*busSubscription]portbus.Handler)
	}
	b.subs[ch][sub] = handler
	b.mu.Unlock()

	return sub, nil
}

type busSubscription struct {
	bus *Bus
	ch  event.Channel
}

func (s *busSubscription) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subs[s.ch], s)
	s.bus.mu.Unlock()
}

package eventbus

import (
	"context"

	"github.com/nvoss/staff-mesh/internal/domain/event"
)

type Handler func(ctx context.Context, e event.Event)

type Subscription interface {
	Unsubscribe()
}

// EventBus fans domain events out to interested subscribers.
// Publishing is best-effort: a failed publish never fails the operation
// that produced the event.
type EventBus interface {
	Publish(ctx context.Context, e event.Event) error
	Subscribe(ctx context.Context, ch event.Channel, handler Handler) (Subscription, error)
}

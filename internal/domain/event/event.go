package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTaskAssigned     Type = "task_assigned"
	TypeTaskDeferred     Type = "task_deferred"
	TypeBatchCompleted   Type = "batch_completed"
	TypeStaffLoadChanged Type = "staff_load_changed"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelDispatch Channel = "dispatch"
	ChannelStaff    Channel = "staff"
)

var typeToChannel = map[Type]Channel{
	TypeTaskAssigned:     ChannelDispatch,
	TypeTaskDeferred:     ChannelDispatch,
	TypeBatchCompleted:   ChannelDispatch,
	TypeStaffLoadChanged: ChannelStaff,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

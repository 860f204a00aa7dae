package timing

import (
	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/id"
)

// An Event is something going to happen in the future.
type Event interface {
	Time() VTimeInSec
	Handler() Handler
	IsSecondary() bool
}

// HookPosBeforeEvent triggers before an event is handled.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent triggers after an event is handled.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	return &EventBase{
		ID:      id.Generate(),
		time:    t,
		handler: handler,
	}
}

// NewSecondaryEventBase creates a new secondary EventBase.
func NewSecondaryEventBase(t VTimeInSec, handler Handler) *EventBase {
	e := NewEventBase(t, handler)
	e.secondary = true

	return e
}

// Time returns the time the event is going to happen.
func (e EventBase) Time() VTimeInSec { return e.time }

// Handler returns the handler that should process the event.
func (e EventBase) Handler() Handler { return e.handler }

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool { return e.secondary }

// A Handler defines a domain for events. An event is always constrained to
// exactly one handler.
type Handler interface {
	Handle(e Event) error
}

package timing

import (
	"sync"

	"github.com/aka-sps/dramsim2/sim/id"
)

// TickEvent is a generic event that ticking components schedule on
// themselves to advance their internal state machine.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a new primary TickEvent.
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	return TickEvent{
		EventBase: EventBase{
			ID:      id.Generate(),
			time:    time,
			handler: handler,
		},
	}
}

// MakeSecondaryTickEvent creates a TickEvent that runs after all primary
// events at the same time have been handled.
func MakeSecondaryTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := MakeTickEvent(handler, time)
	evt.secondary = true

	return evt
}

// Ticker is an object that updates its state on ticks.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules tick events for a Ticker.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Freq      Freq
	Engine    Engine
	secondary bool

	nextTickTime VTimeInSec
}

// NewTickScheduler creates a scheduler for primary tick events.
func NewTickScheduler(handler Handler, engine Engine, freq Freq) *TickScheduler {
	return &TickScheduler{
		handler:      handler,
		Engine:       engine,
		Freq:         freq,
		nextTickTime: -1, // ensures the first tick is scheduled
	}
}

// NewSecondaryTickScheduler creates a scheduler that always schedules
// secondary tick events — used by zero-latency connections that must
// forward messages only after all primary events at the same time have run.
func NewSecondaryTickScheduler(handler Handler, engine Engine, freq Freq) *TickScheduler {
	s := NewTickScheduler(handler, engine, freq)
	s.secondary = true

	return s
}

func (t *TickScheduler) makeEvent(time VTimeInSec) TickEvent {
	if t.secondary {
		return MakeSecondaryTickEvent(t.handler, time)
	}

	return MakeTickEvent(t.handler, time)
}

// TickNow schedules a tick event at the current cycle.
func (t *TickScheduler) TickNow() {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := t.Now()
	if t.nextTickTime >= now {
		return
	}

	t.nextTickTime = t.Freq.ThisTick(now)
	t.Engine.Schedule(t.makeEvent(t.nextTickTime))
}

// TickLater schedules a tick event at the cycle after now.
func (t *TickScheduler) TickLater() {
	t.lock.Lock()
	defer t.lock.Unlock()

	next := t.Freq.NextTick(t.Now())
	if t.nextTickTime >= next {
		return
	}

	t.nextTickTime = next
	t.Engine.Schedule(t.makeEvent(t.nextTickTime))
}

// Now returns the scheduler's view of the current time.
func (t *TickScheduler) Now() VTimeInSec {
	return t.Engine.Now()
}

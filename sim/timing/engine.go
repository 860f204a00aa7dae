package timing

import "github.com/aka-sps/dramsim2/sim/hooking"

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	Now() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	TimeTeller

	Schedule(e Event)
}

// An Engine keeps a discrete-event simulation running.
type Engine interface {
	hooking.Hookable
	EventScheduler

	// Run processes all scheduled events until none remain.
	Run() error

	// Pause prevents the engine from triggering more events.
	Pause()

	// Continue resumes a paused engine.
	Continue()
}

package modeling

import "github.com/aka-sps/dramsim2/sim/timing"

// TickingComponent is a component that updates its state cycle by cycle. A
// user only needs to supply a Ticker whose Tick method is invoked once per
// scheduled cycle.
type TickingComponent struct {
	*ComponentBase
	*timing.TickScheduler

	ticker timing.Ticker
}

// NotifyPortFree triggers the TickingComponent to tick again.
func (c *TickingComponent) NotifyPortFree(_ Port) {
	c.TickLater()
}

// NotifyRecv triggers the TickingComponent to tick again.
func (c *TickingComponent) NotifyRecv(_ Port) {
	c.TickLater()
}

// Handle runs the component's tick function in response to a TickEvent.
func (c *TickingComponent) Handle(_ timing.Event) error {
	if c.ticker.Tick() {
		c.TickLater()
	}

	return nil
}

// NewTickingComponent creates a new TickingComponent.
func NewTickingComponent(
	name string,
	engine timing.Engine,
	freq timing.Freq,
	ticker timing.Ticker,
) *TickingComponent {
	tc := &TickingComponent{
		ComponentBase: NewComponentBase(name),
		ticker:        ticker,
	}
	tc.TickScheduler = timing.NewTickScheduler(tc, engine, freq)

	return tc
}

// NewSecondaryTickingComponent creates a new TickingComponent whose ticks
// are scheduled as secondary events.
func NewSecondaryTickingComponent(
	name string,
	engine timing.Engine,
	freq timing.Freq,
	ticker timing.Ticker,
) *TickingComponent {
	tc := &TickingComponent{
		ComponentBase: NewComponentBase(name),
		ticker:        ticker,
	}
	tc.TickScheduler = timing.NewSecondaryTickScheduler(tc, engine, freq)

	return tc
}

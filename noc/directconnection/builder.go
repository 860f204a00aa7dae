package directconnection

import (
	"github.com/aka-sps/dramsim2/sim/modeling"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// Builder builds a DirectConnection.
type Builder struct {
	engine timing.Engine
	freq   timing.Freq
}

// MakeBuilder creates a default Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the event engine driving the connection.
func (b Builder) WithEngine(e timing.Engine) Builder {
	b.engine = e
	return b
}

// WithFreq sets the frequency at which the connection forwards messages.
func (b Builder) WithFreq(f timing.Freq) Builder {
	b.freq = f
	return b
}

// Build creates the DirectConnection.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		ports: ports{
			ports:   make([]modeling.Port, 0),
			portMap: make(map[modeling.RemotePort]int),
		},
	}
	c.TickingComponent = modeling.NewSecondaryTickingComponent(name, b.engine, b.freq, c)

	mw := &middleware{Comp: c}
	c.AddMiddleware(mw)

	return c
}

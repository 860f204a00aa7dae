// Package simulation ties together an engine and the components it drives
// into a single runnable simulation.
package simulation

import (
	"github.com/aka-sps/dramsim2/sim/id"
	"github.com/aka-sps/dramsim2/sim/naming"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// A Simulation provides the services a simulator needs to wire components
// together and run them to completion.
type Simulation struct {
	idGenerator id.Generator
	engine      timing.Engine
	components  map[string]naming.Named
}

// NewSimulation creates a new Simulation.
func NewSimulation() *Simulation {
	return &Simulation{
		idGenerator: id.NewGenerator(),
		components:  make(map[string]naming.Named),
	}
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string { return "simulation" }

// RegisterEngine registers the engine used in the simulation.
func (s *Simulation) RegisterEngine(e timing.Engine) {
	s.engine = e
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() timing.Engine {
	return s.engine
}

// RegisterComponent registers a named component with the simulation so it
// can later be looked up by name.
func (s *Simulation) RegisterComponent(c naming.Named) {
	name := c.Name()
	if _, ok := s.components[name]; ok {
		panic("component " + name + " already registered")
	}

	s.components[name] = c
}

// GetComponentByName returns the component registered under the given name.
func (s *Simulation) GetComponentByName(name string) naming.Named {
	return s.components[name]
}

// Run runs the simulation to completion.
func (s *Simulation) Run() error {
	return s.engine.Run()
}

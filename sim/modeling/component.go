package modeling

import (
	"sync"

	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/naming"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// A Component is an element being simulated.
type Component interface {
	naming.Named
	timing.Handler
	hooking.Hookable
	PortOwner

	NotifyRecv(port Port)
	NotifyPortFree(port Port)
}

// ComponentBase provides functionality shared by most components.
type ComponentBase struct {
	name string
	sync.Mutex
	hooking.HookableBase
	PortOwnerBase
}

// NewComponentBase creates a new ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	naming.NameMustBeValid(name)

	return &ComponentBase{
		name:          name,
		PortOwnerBase: MakePortOwnerBase(),
	}
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string { return c.name }

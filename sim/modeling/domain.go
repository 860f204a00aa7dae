package modeling

import "github.com/aka-sps/dramsim2/sim/naming"

// Domain is a group of closely connected components, such as all the
// channels owned by a single MultiChannelMemorySystem.
type Domain struct {
	naming.NamedBase
	PortOwnerBase
}

// NewDomain creates a new Domain.
func NewDomain(name string) *Domain {
	naming.NameMustBeValid(name)

	return &Domain{
		NamedBase:     naming.MakeNamedBase(name),
		PortOwnerBase: MakePortOwnerBase(),
	}
}

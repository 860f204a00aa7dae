// Package directconnection provides a zero-latency connection between two
// ports, used to wire a host port directly to a memory controller's top
// port in tests and small simulations.
package directconnection

import "github.com/aka-sps/dramsim2/sim/modeling"

type ports struct {
	ports   []modeling.Port
	portMap map[modeling.RemotePort]int
}

func (p *ports) addPort(port modeling.Port) {
	p.ports = append(p.ports, port)
	p.portMap[port.AsRemote()] = len(p.ports) - 1
}

func (p *ports) getPortIndex(index int) modeling.Port {
	return p.ports[index]
}

func (p *ports) getPortByName(name modeling.RemotePort) modeling.Port {
	return p.ports[p.portMap[name]]
}

func (p *ports) list() []modeling.Port { return p.ports }

func (p *ports) len() int { return len(p.ports) }

// Comp is a DirectConnection that connects two or more ports without
// latency.
type Comp struct {
	*modeling.TickingComponent
	modeling.MiddlewareHolder

	ports      ports
	nextPortID int
}

// PlugIn marks the port as connected to this DirectConnection.
func (c *Comp) PlugIn(port modeling.Port) {
	c.Lock()
	defer c.Unlock()

	c.ports.addPort(port)
	port.SetConnection(c)
}

// Unplug marks the port as no longer connected to this DirectConnection.
func (c *Comp) Unplug(_ modeling.Port) {
	panic("not implemented")
}

// NotifyAvailable is called by a port to notify that it can receive again.
func (c *Comp) NotifyAvailable(p modeling.Port) {
	for _, port := range c.ports.list() {
		if port == p {
			continue
		}

		port.NotifyAvailable()
	}

	c.TickNow()
}

// NotifySend is called by a port to notify that the connection should tick.
func (c *Comp) NotifySend() {
	c.TickNow()
}

// Tick runs the connection's single middleware.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

type middleware struct {
	*Comp
}

// Tick forwards as many messages as possible between the plugged-in ports.
func (m *middleware) Tick() bool {
	madeProgress := false

	for i := 0; i < m.ports.len(); i++ {
		portID := (i + m.nextPortID) % m.ports.len()
		port := m.ports.getPortIndex(portID)
		madeProgress = m.forwardMany(port) || madeProgress
	}

	m.nextPortID = (m.nextPortID + 1) % m.ports.len()

	return madeProgress
}

func (m *middleware) forwardMany(port modeling.Port) bool {
	madeProgress := false

	for {
		head := port.PeekOutgoing()
		if head == nil {
			break
		}

		dst := head.Meta().Dst
		dstPort := m.ports.getPortByName(dst)

		if err := dstPort.Deliver(head); err != nil {
			break
		}

		madeProgress = true
		port.RetrieveOutgoing()
	}

	return madeProgress
}

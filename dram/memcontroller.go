// Package dram implements a single-channel, cycle-accurate DRAM memory
// controller: the transaction scheduler, command queue, and bank-state
// machinery that turn ReadReq/WriteReq traffic into a JEDEC-timed sequence
// of ACTIVATE/READ/WRITE/PRECHARGE/REFRESH commands.
package dram

import (
	"github.com/aka-sps/dramsim2/dram/energy"
	"github.com/aka-sps/dramsim2/dram/internal/addressmapping"
	"github.com/aka-sps/dramsim2/dram/internal/cmdq"
	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/internal/org"
	"github.com/aka-sps/dramsim2/dram/signal"
	"github.com/aka-sps/dramsim2/dram/internal/trans"
	"github.com/aka-sps/dramsim2/mem"
	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/modeling"
)

// HookPosTransactionStart marks when a transaction is accepted onto the
// controller's internal queue.
var HookPosTransactionStart = &hooking.HookPos{Name: "DRAM Transaction Start"}

// HookPosTransactionComplete marks when a transaction's response has been
// sent back out the top port.
var HookPosTransactionComplete = &hooking.HookPos{Name: "DRAM Transaction Complete"}

// HookPosCommandIssue marks when a command is dispatched to the channel.
// Item is the *signal.Command issued.
var HookPosCommandIssue = &hooking.HookPos{Name: "DRAM Command Issue"}

// transactionState tracks one in-flight transaction from acceptance to
// response.
type transactionState struct {
	transaction *signal.Transaction
	startCycle  int
}

// Comp is a single-channel DRAM memory controller.
type Comp struct {
	*modeling.TickingComponent
	modeling.MiddlewareHolder

	config config.Config

	addrMapper    addressmapping.Mapper
	addrConverter mem.AddressConverter

	channel       org.Channel
	commandQueue  cmdq.CommandQueue
	splitter      trans.SubTransSplitter
	subTransQueue trans.SubTransactionQueue

	energy *energy.Accumulator

	transactions map[string]*transactionState

	refreshCountdown []int

	poweredDown []bool

	// outgoingCmd and cmdCyclesLeft model the single-slot command bus: a
	// command the queue hands to issue() sits here for Timing.CMD cycles of
	// transit delay before it actually reaches the channel.
	outgoingCmd   *signal.Command
	cmdCyclesLeft int

	topPort modeling.Port
}

// middleware implements the controller's per-cycle behavior.
type middleware struct {
	*Comp
}

// Tick advances the controller by one cycle: responses leave first so a
// port freed this cycle can accept a new request in the same cycle,
// followed by the channel's in-flight completions, the command bus's
// countdown, command issue onto that bus, subtransaction dispatch,
// refresh/low-power bookkeeping, and finally intake of new requests.
func (m *middleware) Tick() bool {
	progress := false

	progress = m.respond() || progress
	progress = m.channel.Tick() || progress
	progress = m.advanceCommandBus() || progress
	progress = m.issue() || progress
	progress = m.subTransQueue.Tick() || progress
	progress = m.refreshScheduling() || progress
	progress = m.lowPowerControl() || progress
	m.backgroundEnergy()
	progress = m.parseTop() || progress

	// A transaction still in flight may only be waiting out a timing floor
	// this cycle; keep ticking until every one has responded.
	if len(m.transactions) > 0 {
		progress = true
	}

	return progress
}

// parseTop accepts one new request from the top port, converts its address,
// splits it into subtransactions, and queues it, provided the subtransaction
// queue has room for every subtransaction the request will produce.
func (m *middleware) parseTop() bool {
	msg := m.topPort.PeekIncoming()
	if msg == nil {
		return false
	}

	t := m.buildTransaction(msg)

	m.splitter.Split(t)

	if !m.subTransQueue.CanPush(len(t.SubTransactions)) {
		return false
	}

	m.topPort.RetrieveIncoming()
	m.subTransQueue.Push(t)

	key := msg.Meta().ID
	m.transactions[key] = &transactionState{
		transaction: t,
		startCycle:  m.channel.Now(),
	}

	m.InvokeHook(hooking.HookCtx{
		Domain: m.Comp, Pos: HookPosTransactionStart, Item: t,
	})

	return true
}

func (m *middleware) buildTransaction(msg modeling.Msg) *signal.Transaction {
	internalAddress := func(external uint64) uint64 {
		if m.addrConverter == nil {
			return external
		}

		return m.addrConverter.ConvertExternalToInternal(external)
	}

	switch req := msg.(type) {
	case mem.ReadReq:
		return &signal.Transaction{
			Type:            signal.TransactionTypeRead,
			Read:            req,
			InternalAddress: internalAddress(req.Address),
		}
	case mem.WriteReq:
		return &signal.Transaction{
			Type:            signal.TransactionTypeWrite,
			Write:           req,
			InternalAddress: internalAddress(req.Address),
		}
	default:
		panic("dram: unsupported request type on top port")
	}
}

// issue pulls at most one command from the command queue and places it on
// the command bus, provided the bus is free. A command queued while the bus
// is still occupied by an earlier one would be a bus collision, which never
// happens by construction: the queue is only asked for the next command
// once the bus has room for it.
func (m *middleware) issue() bool {
	if m.outgoingCmd != nil {
		return false
	}

	cmd := m.commandQueue.GetCommandToIssue()
	if cmd == nil {
		return false
	}

	m.outgoingCmd = cmd
	m.cmdCyclesLeft = max(m.config.Timing.CMD, 1)

	return true
}

// advanceCommandBus counts down the in-flight command's transit delay and
// dispatches it to the channel once it reaches the bus's far end.
func (m *middleware) advanceCommandBus() bool {
	if m.outgoingCmd == nil {
		return false
	}

	m.cmdCyclesLeft--
	if m.cmdCyclesLeft > 0 {
		return true
	}

	cmd := m.outgoingCmd
	m.outgoingCmd = nil

	m.dispatch(cmd)

	return true
}

func (m *middleware) dispatch(cmd *signal.Command) {
	m.channel.StartCommand(cmd)
	m.channel.UpdateTiming(cmd)
	m.energy.AccountCommand(cmd, m.config.Topology.NumDevices)

	if cmd.Kind == signal.CmdKindActivate || cmd.Kind == signal.CmdKindRefresh {
		m.wake(cmd.Rank)
	}

	m.InvokeHook(hooking.HookCtx{Domain: m.Comp, Pos: HookPosCommandIssue, Item: cmd})
}

// respond scans in-flight transactions for ones every subtransaction of
// which has completed, and attempts to send their response out the top
// port, one per cycle to match the port's single-message send budget.
func (m *middleware) respond() bool {
	for key, st := range m.transactions {
		if !st.transaction.IsCompleted() {
			continue
		}

		if !m.trySendResponse(key, st) {
			continue
		}

		return true
	}

	return false
}

func (m *middleware) trySendResponse(key string, st *transactionState) bool {
	t := st.transaction

	var rsp modeling.Msg

	if t.IsRead() {
		rsp = mem.DataReadyRspBuilder{}.
			WithSrc(t.Read.Dst).
			WithDst(t.Read.Src).
			WithRspTo(t.Read.ID).
			WithData(t.ReadData()).
			Build()
	} else {
		rsp = mem.WriteDoneRspBuilder{}.
			WithSrc(t.Write.Dst).
			WithDst(t.Write.Src).
			WithRspTo(t.Write.ID).
			Build()
	}

	if err := m.topPort.Send(rsp); err != nil {
		return false
	}

	delete(m.transactions, key)

	for _, sub := range t.SubTransactions {
		loc := m.addrMapper.Map(sub.InternalAddress)
		m.energy.RecordLatency(loc.Rank, loc.Bank, m.channel.Now()-st.startCycle)
	}

	m.InvokeHook(hooking.HookCtx{
		Domain: m.Comp, Pos: HookPosTransactionComplete, Item: t,
	})

	return true
}

// refreshScheduling decrements every rank's refresh countdown and arms the
// command queue's refresh path once a countdown reaches zero.
func (m *middleware) refreshScheduling() bool {
	progress := false

	for rank := range m.refreshCountdown {
		m.refreshCountdown[rank]--
		if m.refreshCountdown[rank] > 0 {
			continue
		}

		m.refreshCountdown[rank] = m.config.Timing.RefreshPeriod
		m.commandQueue.NeedRefresh(rank)
		m.wake(rank)
		progress = true
	}

	return progress
}

// lowPowerControl implements the optional low-power transitions: a rank
// with an empty command queue and every bank idle powers down, and wakes
// again once a new transaction or refresh needs it.
func (m *middleware) lowPowerControl() bool {
	if !m.config.Debug.LowPower {
		return false
	}

	progress := false

	for rank := 0; rank < m.config.Topology.NumRanks; rank++ {
		if m.poweredDown[rank] {
			if !m.commandQueue.IsEmpty(rank) &&
				m.channel.Now() >= m.channel.BankState(rank, 0).NextPowerUp {
				m.wake(rank)
				progress = true
			}

			continue
		}

		if !m.commandQueue.IsEmpty(rank) {
			continue
		}

		if !m.rankAllIdle(rank) {
			continue
		}

		m.powerDown(rank)
		progress = true
	}

	return progress
}

func (m *middleware) rankAllIdle(rank int) bool {
	for bank := 0; bank < m.config.Topology.NumBanks; bank++ {
		if m.channel.BankState(rank, bank).State != org.Idle {
			return false
		}
	}

	return true
}

func (m *middleware) powerDown(rank int) {
	now := m.channel.Now()

	for bank := 0; bank < m.config.Topology.NumBanks; bank++ {
		st := m.channel.BankState(rank, bank)
		st.State = org.PowerDown
		st.NextPowerUp = now + m.config.Timing.CKE
	}

	m.poweredDown[rank] = true
}

// wake brings rank back out of PowerDown, if it was down, setting the
// tXP floor on its next activate.
func (m *middleware) wake(rank int) {
	if !m.poweredDown[rank] {
		return
	}

	now := m.channel.Now()

	for bank := 0; bank < m.config.Topology.NumBanks; bank++ {
		st := m.channel.BankState(rank, bank)
		if st.State != org.PowerDown {
			continue
		}

		st.State = org.Idle
		st.NextActivate = max(st.NextActivate, now+m.config.Timing.XP)
	}

	m.poweredDown[rank] = false
}

// Now returns the controller's current cycle count.
func (c *Comp) Now() int { return c.channel.Now() }

// EnergyRanks returns the accumulated per-rank energy counters for the
// epoch since the last call to ResetEnergyEpoch.
func (c *Comp) EnergyRanks() []energy.RankAccumulator { return c.energy.Ranks() }

// ResetEnergyEpoch clears the per-rank energy counters, starting a new
// epoch.
func (c *Comp) ResetEnergyEpoch() { c.energy.ResetEpoch() }

// HistogramBins returns the channel-wide access-latency histogram
// accumulated since construction.
func (c *Comp) HistogramBins() (bins, counts []int) { return c.energy.HistogramBins() }

// EpochLength returns the configured number of cycles per reporting epoch.
func (c *Comp) EpochLength() int { return c.config.Timing.EpochLength }

// Topology returns the controller's configured topology, used by a host to
// size its address space and shard across channels.
func (c *Comp) Topology() config.Topology { return c.config.Topology }

// Config returns the controller's full resolved configuration.
func (c *Comp) Config() config.Config { return c.config }

// TransactionSize returns the number of bytes moved by every transaction
// the controller accepts.
func (c *Comp) TransactionSize() int { return c.config.Topology.TransactionSize(c.config.Timing.BL) }

// backgroundEnergy accounts one cycle's background current draw for every
// rank, selected by whether any of its banks is active or refreshing.
func (m *middleware) backgroundEnergy() {
	for rank := 0; rank < m.config.Topology.NumRanks; rank++ {
		anyActive := false

		for bank := 0; bank < m.config.Topology.NumBanks; bank++ {
			st := m.channel.BankState(rank, bank).State
			if st == org.RowActive || st == org.Refreshing {
				anyActive = true
				break
			}
		}

		m.energy.AccountBackground(rank, anyActive, m.poweredDown[rank], m.config.Topology.NumDevices)
	}
}

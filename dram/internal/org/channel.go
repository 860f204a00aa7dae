package org

import (
	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/signal"
	"github.com/aka-sps/dramsim2/sim/naming"
	"github.com/aka-sps/dramsim2/sim/hooking"
)

// Channel is the device-side half of a DRAM channel: the bank-state table
// and sparse storage for every bank, and the bus-timing model that turns a
// dispatched Command into a completed SubTransaction some cycles later.
type Channel interface {
	naming.Named
	hooking.Hookable

	// StartCommand applies cmd's effect on its target bank's row buffer
	// and (for column accesses) schedules the data transfer that
	// completes cmd's subtransaction.
	StartCommand(cmd *signal.Command)

	// UpdateTiming applies cmd's effect on the bank-state timing table:
	// the Next* floors of the target bank and, where the spec calls for
	// it, of sibling banks and other ranks.
	UpdateTiming(cmd *signal.Command)

	// BankState returns the live bank-state for (rank, bank). Callers
	// must not retain the pointer across a Tick.
	BankState(rank, bank int) *BankState

	// Now returns the channel's current cycle count.
	Now() int

	// Tick advances in-flight column-access completions and implicit
	// bank-state transitions by one cycle. It returns true if it made
	// progress.
	Tick() bool
}

// pendingAccess is a column access in flight between being dispatched and
// its data (or write commit) actually landing in the bank.
type pendingAccess struct {
	cyclesLeft int
	cmd        *signal.Command
}

// ChannelImpl is the concrete Channel.
type ChannelImpl struct {
	hooking.HookableBase
	name string

	Timing   config.Timing
	Topology config.Topology

	banks [][]*Bank

	pending []pendingAccess
	now     int
}

// NewChannel creates a ChannelImpl with freshly allocated banks for every
// (rank, bank) pair in topo.
func NewChannel(name string, t config.Timing, topo config.Topology) *ChannelImpl {
	accessUnit := topo.TransactionSize(t.BL)

	banks := make([][]*Bank, topo.NumRanks)
	for r := range banks {
		banks[r] = make([]*Bank, topo.NumBanks)
		for b := range banks[r] {
			banks[r][b] = NewBank(accessUnit, topo.NumCols)
		}
	}

	return &ChannelImpl{
		name:     name,
		Timing:   t,
		Topology: topo,
		banks:    banks,
	}
}

// Name returns the channel's hierarchical name.
func (c *ChannelImpl) Name() string { return c.name }

// BankState returns the live bank-state for (rank, bank).
func (c *ChannelImpl) BankState(rank, bank int) *BankState {
	return &c.banks[rank][bank].State
}

// StartCommand performs cmd's data-path effect: for a column access it
// schedules a pendingAccess that completes after WL (write) or RL (read)
// cycles; ACTIVATE/PRECHARGE/REFRESH have no data-path effect.
func (c *ChannelImpl) StartCommand(cmd *signal.Command) {
	switch cmd.Kind {
	case signal.CmdKindRead, signal.CmdKindReadP:
		c.pending = append(c.pending, pendingAccess{
			cyclesLeft: c.Timing.RL(),
			cmd:        cmd,
		})
	case signal.CmdKindWrite, signal.CmdKindWriteP:
		c.pending = append(c.pending, pendingAccess{
			cyclesLeft: c.Timing.WL(),
			cmd:        cmd,
		})
	}
}

// Tick advances every pending column access by one cycle, committing
// writes and materialising reads (via Bank.Read's echo/sentinel model)
// once their latency elapses. It also advances implicit bank-state
// transitions (the auto-precharge and refresh-to-idle countdowns).
func (c *ChannelImpl) Tick() bool {
	madeProgress := c.tickPending()
	madeProgress = c.tickImplicitTransitions() || madeProgress
	c.now++

	return madeProgress
}

// Now returns the channel's current cycle count.
func (c *ChannelImpl) Now() int { return c.now }

func (c *ChannelImpl) tickPending() bool {
	if len(c.pending) == 0 {
		return false
	}

	madeProgress := false
	remaining := c.pending[:0]

	for _, p := range c.pending {
		p.cyclesLeft--
		if p.cyclesLeft > 0 {
			remaining = append(remaining, p)
			continue
		}

		c.completeAccess(p.cmd)
		madeProgress = true
	}

	c.pending = remaining

	return madeProgress
}

func (c *ChannelImpl) completeAccess(cmd *signal.Command) {
	bank := c.banks[cmd.Rank][cmd.Bank]

	if cmd.Kind.IsWrite() {
		bank.Write(cmd.Row, cmd.Col, cmd.Data)
	} else {
		cmd.Data = bank.Read(cmd.Row, cmd.Col)
	}

	if cmd.Sub != nil {
		cmd.Sub.Completed = true
		if cmd.Kind.IsRead() {
			cmd.Sub.Data = cmd.Data
		}
	}
}

func (c *ChannelImpl) tickImplicitTransitions() bool {
	madeProgress := false

	for r := range c.banks {
		for b := range c.banks[r] {
			st := &c.banks[r][b].State
			if st.StateChangeCountdown <= 0 {
				continue
			}

			st.StateChangeCountdown--
			madeProgress = true

			if st.StateChangeCountdown > 0 {
				continue
			}

			switch st.State {
			case RowActive:
				// A READ_P/WRITE_P's implicit precharge begins.
				st.State = Precharging
				st.StateChangeCountdown = c.Timing.RP
				st.RowAccessCount = 0
			case Precharging:
				st.State = Idle
			case Refreshing:
				st.State = Idle
			}
		}
	}

	return madeProgress
}

// UpdateTiming applies the bank-state timing transitions described for
// cmd's kind: the Next* floors of the directly targeted bank, and, for
// ACTIVATE/READ/WRITE, the cross-bank and cross-rank floors the spec
// requires to keep tRRD, tRTRS, and read/write turnaround honoured.
func (c *ChannelImpl) UpdateTiming(cmd *signal.Command) {
	switch cmd.Kind {
	case signal.CmdKindActivate:
		c.updateOnActivate(cmd)
	case signal.CmdKindRead:
		c.updateOnRead(cmd, false)
	case signal.CmdKindReadP:
		c.updateOnRead(cmd, true)
	case signal.CmdKindWrite:
		c.updateOnWrite(cmd, false)
	case signal.CmdKindWriteP:
		c.updateOnWrite(cmd, true)
	case signal.CmdKindPrecharge:
		c.updateOnPrecharge(cmd)
	case signal.CmdKindRefresh:
		c.updateOnRefresh(cmd)
	}
}

func (c *ChannelImpl) updateOnActivate(cmd *signal.Command) {
	now := c.now

	t := c.Timing
	st := c.BankState(cmd.Rank, cmd.Bank)
	st.State = RowActive
	st.OpenRow = cmd.Row
	st.NextActivate = max(st.NextActivate, now+t.RC)
	st.NextPrecharge = max(st.NextPrecharge, now+t.RAS)
	st.NextRead = max(st.NextRead, now+t.RCD-t.AL)
	st.NextWrite = max(st.NextWrite, now+t.RCD-t.AL)

	for b := range c.banks[cmd.Rank] {
		if b == cmd.Bank {
			continue
		}

		sib := c.BankState(cmd.Rank, b)
		sib.NextActivate = max(sib.NextActivate, now+t.RRD)
	}
}

func (c *ChannelImpl) updateOnRead(cmd *signal.Command, autoPre bool) {
	now := c.now
	t := c.Timing
	st := c.BankState(cmd.Rank, cmd.Bank)

	st.NextPrecharge = max(st.NextPrecharge, now+t.ReadToPreDelay())
	st.LastCommandKind = int(cmd.Kind)
	st.RowAccessCount++

	for r := range c.banks {
		for b := range c.banks[r] {
			if r == cmd.Rank {
				if b == cmd.Bank {
					continue
				}

				other := c.BankState(r, b)
				other.NextRead = max(other.NextRead, now+max(t.CCD, t.BL/2))
				other.NextWrite = max(other.NextWrite, now+t.ReadToWriteDelay())

				continue
			}

			other := c.BankState(r, b)
			if other.State != RowActive {
				continue
			}

			other.NextRead = max(other.NextRead, now+t.BL/2+t.RTRS)
			other.NextWrite = max(other.NextWrite, now+t.ReadToWriteDelay())
		}
	}

	if autoPre {
		st.NextActivate = max(st.NextActivate, now+t.ReadAutoPreDelay())
		st.NextRead = st.NextActivate
		st.NextWrite = st.NextActivate
		st.StateChangeCountdown = t.ReadAutoPreDelay()
	}
}

func (c *ChannelImpl) updateOnWrite(cmd *signal.Command, autoPre bool) {
	now := c.now
	t := c.Timing
	st := c.BankState(cmd.Rank, cmd.Bank)

	st.NextPrecharge = max(st.NextPrecharge, now+t.WriteToPreDelay())
	st.LastCommandKind = int(cmd.Kind)
	st.RowAccessCount++

	for r := range c.banks {
		for b := range c.banks[r] {
			if r == cmd.Rank {
				if b == cmd.Bank {
					continue
				}

				other := c.BankState(r, b)
				other.NextWrite = max(other.NextWrite, now+max(t.BL/2, t.CCD))
				other.NextRead = max(other.NextRead, now+t.WriteToReadDelayB())

				continue
			}

			other := c.BankState(r, b)
			if other.State != RowActive {
				continue
			}

			other.NextWrite = max(other.NextWrite, now+t.BL/2+t.RTRS)
			other.NextRead = max(other.NextRead, now+t.WriteToReadDelayR())
		}
	}

	if autoPre {
		st.NextActivate = max(st.NextActivate, now+t.WriteAutoPreDelay())
		st.NextRead = st.NextActivate
		st.NextWrite = st.NextActivate
		st.StateChangeCountdown = t.WriteAutoPreDelay()
	}
}

func (c *ChannelImpl) updateOnPrecharge(cmd *signal.Command) {
	now := c.now
	t := c.Timing
	st := c.BankState(cmd.Rank, cmd.Bank)
	st.State = Precharging
	st.StateChangeCountdown = t.RP
	st.NextActivate = max(st.NextActivate, now+t.RP)
	st.RowAccessCount = 0
}

func (c *ChannelImpl) updateOnRefresh(cmd *signal.Command) {
	now := c.now
	t := c.Timing

	for b := range c.banks[cmd.Rank] {
		st := c.BankState(cmd.Rank, b)
		st.State = Refreshing
		st.NextActivate = now + t.RFC
		st.StateChangeCountdown = t.RFC
	}
}

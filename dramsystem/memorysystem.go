// Package dramsystem assembles one or more single-channel DRAM memory
// controllers into the host-facing MemorySystem / MultiChannelMemorySystem
// pair: the synchronous addTransaction/willAcceptTransaction/update API a
// CPU-side simulator drives once per host cycle, plus the callback,
// statistics, and output plumbing around it.
package dramsystem

import (
	"fmt"
	"io"

	"github.com/aka-sps/dramsim2/dram"
	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/signal"
	"github.com/aka-sps/dramsim2/mem"
	"github.com/aka-sps/dramsim2/noc/directconnection"
	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/modeling"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// ReadDoneCallback reports a completed read: the address it was issued at
// and the controller cycle it completed on.
type ReadDoneCallback func(systemID int, addr uint64, cycle int)

// WriteDoneCallback reports a completed write.
type WriteDoneCallback func(systemID int, addr uint64, cycle int)

// PowerCallback reports one rank's accumulated energy for the epoch just
// closed, in mA-cycles: background, burst, activate/precharge, and refresh.
type PowerCallback func(rank int, background, burst, actPre, refresh float64)

// MemorySystem drives a single DRAM channel from a synchronous, per-cycle
// host API, translating addTransaction/update calls into the event-driven
// traffic the underlying controller expects.
type MemorySystem struct {
	systemID int

	engine timing.Engine
	ctrl   *dram.Comp
	conn   *directconnection.Comp

	hostPort    modeling.Port
	ctrlTopPort modeling.RemotePort

	readDone    ReadDoneCallback
	writeDone   WriteDoneCallback
	reportPower PowerCallback

	epochCycle int
}

// funcHook adapts a plain function to hooking.Hook. It wraps the function
// in a pointer so AcceptHook's duplicate-hook check, which compares hooks
// with ==, compares pointer identity rather than the underlying func value
// (func values other than nil are not comparable).
type funcHook struct {
	f func(hooking.HookCtx)
}

func newFuncHook(f func(hooking.HookCtx)) *funcHook { return &funcHook{f: f} }

func (h *funcHook) Func(ctx hooking.HookCtx) { h.f(ctx) }

// NewMemorySystem creates a MemorySystem around a freshly built DRAM
// channel, connected to its own host-facing port through a zero-latency
// connection in the teacher's directconnection idiom.
func NewMemorySystem(systemID int, engine timing.Engine, freq timing.Freq, cfg config.Config, addrConv mem.AddressConverter, name string) *MemorySystem {
	ctrl := dram.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithConfig(cfg).
		WithAddressConverter(addrConv).
		Build(name)

	conn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		Build(name + ".Conn")

	hostPort := modeling.NewPort(nil, cfg.Timing.TransQueueDepth, cfg.Timing.TransQueueDepth, name+".Host")

	conn.PlugIn(hostPort)
	conn.PlugIn(ctrl.GetPortByName("Top"))

	ms := &MemorySystem{
		systemID:    systemID,
		engine:      engine,
		ctrl:        ctrl,
		conn:        conn,
		hostPort:    hostPort,
		ctrlTopPort: ctrl.GetPortByName("Top").AsRemote(),
	}

	ctrl.AcceptHook(newFuncHook(ms.onTransactionComplete))

	return ms
}

func (ms *MemorySystem) onTransactionComplete(ctx hooking.HookCtx) {
	if ctx.Pos != dram.HookPosTransactionComplete {
		return
	}

	t := ctx.Item.(*signal.Transaction)
	cycle := ms.ctrl.Now()

	if t.IsRead() {
		if ms.readDone != nil {
			ms.readDone(ms.systemID, t.GlobalAddress(), cycle)
		}

		return
	}

	if ms.writeDone != nil {
		ms.writeDone(ms.systemID, t.GlobalAddress(), cycle)
	}
}

// WillAcceptTransaction reports whether a new transaction can be queued
// right now.
func (ms *MemorySystem) WillAcceptTransaction() bool {
	return ms.hostPort.CanSend()
}

// AddTransaction queues a read or write at addr, sized to the channel's
// fixed transaction size, returning false if the host port's outgoing
// buffer (mirroring the channel's transaction queue depth) is full.
func (ms *MemorySystem) AddTransaction(isWrite bool, addr uint64) bool {
	if !ms.WillAcceptTransaction() {
		return false
	}

	var msg modeling.Msg

	if isWrite {
		msg = mem.WriteReqBuilder{}.
			WithSrc(ms.hostPort.AsRemote()).
			WithDst(ms.ctrlTopPort).
			WithAddress(addr).
			WithData(make([]byte, ms.ctrl.TransactionSize())).
			Build()
	} else {
		msg = mem.ReadReqBuilder{}.
			WithSrc(ms.hostPort.AsRemote()).
			WithDst(ms.ctrlTopPort).
			WithAddress(addr).
			WithByteSize(uint64(ms.ctrl.TransactionSize())).
			Build()
	}

	return ms.hostPort.Send(msg) == nil
}

// Update drains the event engine to quiescence, carrying every queued
// transaction through to completion. Strict one-DRAM-cycle-per-call
// stepping is not offered by the underlying event engine; callers that
// need finer-grained pacing should use a ClockDomainCrosser around Update,
// as MultiChannelMemorySystem does.
func (ms *MemorySystem) Update() {
	if err := ms.engine.Run(); err != nil {
		panic(err)
	}

	ms.maybeReportPower()
}

func (ms *MemorySystem) maybeReportPower() {
	epochLen := ms.ctrl.EpochLength()
	if epochLen <= 0 {
		return
	}

	now := ms.ctrl.Now()
	for ms.epochCycle+epochLen <= now {
		ms.epochCycle += epochLen

		if ms.reportPower != nil {
			for rank, acc := range ms.ctrl.EnergyRanks() {
				ms.reportPower(rank, acc.Background, acc.Burst, acc.ActPre, acc.Refresh)
			}
		}

		ms.ctrl.ResetEnergyEpoch()
	}
}

// RegisterCallbacks installs the read/write completion and per-epoch power
// callbacks. Any of them may be nil.
func (ms *MemorySystem) RegisterCallbacks(readDone ReadDoneCallback, writeDone WriteDoneCallback, reportPower PowerCallback) {
	ms.readDone = readDone
	ms.writeDone = writeDone
	ms.reportPower = reportPower
}

// PrintStats writes a human-readable summary of the channel's per-rank
// energy and access-latency histogram to w. When final is true, the
// latency histogram is included.
func (ms *MemorySystem) PrintStats(w io.Writer, final bool) {
	fmt.Fprintf(w, "== %s ==\n", ms.ctrl.Name())

	for rank, acc := range ms.ctrl.EnergyRanks() {
		fmt.Fprintf(w, "rank %d: background=%.2f burst=%.2f actpre=%.2f refresh=%.2f\n",
			rank, acc.Background, acc.Burst, acc.ActPre, acc.Refresh)
	}

	if !final {
		return
	}

	fmt.Fprintln(w, "!!HISTOGRAM_DATA")

	bins, counts := ms.ctrl.HistogramBins()
	for i, bin := range bins {
		fmt.Fprintf(w, "%d=%d\n", bin, counts[i])
	}
}

// Channel exposes the underlying controller, for callers (such as
// MultiChannelMemorySystem) that need its topology or raw hooks.
func (ms *MemorySystem) Channel() *dram.Comp { return ms.ctrl }

// AttachVerificationRecorder subscribes rec to every command this channel
// issues, stamped with this channel's own cycle counter.
func (ms *MemorySystem) AttachVerificationRecorder(rec *VerificationRecorder) {
	ms.ctrl.AcceptHook(rec.Hook(ms.ctrl.Now))
}

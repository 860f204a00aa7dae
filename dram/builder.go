package dram

import (
	"github.com/aka-sps/dramsim2/dram/energy"
	"github.com/aka-sps/dramsim2/dram/internal/addressmapping"
	"github.com/aka-sps/dramsim2/dram/internal/cmdq"
	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/internal/org"
	"github.com/aka-sps/dramsim2/dram/internal/trans"
	"github.com/aka-sps/dramsim2/mem"
	"github.com/aka-sps/dramsim2/sim/modeling"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// Builder builds a single-channel DRAM memory controller.
type Builder struct {
	engine timing.Engine
	freq   timing.Freq

	config config.Config

	addrConverter mem.AddressConverter

	topBufferSize int
}

// MakeBuilder creates a Builder configured with the default device and
// system timing.
func MakeBuilder() Builder {
	return Builder{
		freq:          1 * timing.GHz,
		config:        config.Default(),
		topBufferSize: 16,
	}
}

// WithEngine sets the event engine the controller ticks on.
func (b Builder) WithEngine(e timing.Engine) Builder {
	b.engine = e
	return b
}

// WithFreq sets the frequency at which the controller ticks. This is the
// DRAM device clock, not the outer memory clock; use WithConfig's Timing.TCK
// to keep energy and latency scaled consistently.
func (b Builder) WithFreq(f timing.Freq) Builder {
	b.freq = f
	return b
}

// WithConfig overrides the controller's full device and system
// configuration.
func (b Builder) WithConfig(c config.Config) Builder {
	b.config = c
	return b
}

// WithAddressConverter installs the converter applied to every inbound
// request's address before it reaches the channel's address mapper, used
// to carve a multi-channel address space down to this channel's share.
func (b Builder) WithAddressConverter(c mem.AddressConverter) Builder {
	b.addrConverter = c
	return b
}

// WithTopBufferSize sets the capacity of the controller's external-facing
// port buffers.
func (b Builder) WithTopBufferSize(n int) Builder {
	b.topBufferSize = n
	return b
}

// Build creates the memory controller component, wiring its address
// mapper, command queue, subtransaction queue, and channel according to
// the builder's configuration.
func (b Builder) Build(name string) *Comp {
	cfg := b.config

	addrMapper := addressmapping.MakeBuilder().
		WithScheme(cfg.AddrMapping).
		WithBurstLength(cfg.Timing.BL).
		WithBusWidth(cfg.Topology.JEDECDataBusBits).
		WithNumChan(cfg.Topology.NumChans).
		WithNumRank(cfg.Topology.NumRanks).
		WithNumBank(cfg.Topology.NumBanks).
		WithNumRow(cfg.Topology.NumRows).
		WithNumCol(cfg.Topology.NumCols).
		Build()

	channel := org.NewChannel(name+".Channel", cfg.Timing, cfg.Topology)

	commandQueue := cmdq.NewCommandQueueImpl(
		channel, cfg.Timing, cfg.Topology,
		cfg.RowBufferPolicy, cfg.Scheduling, cfg.Queuing,
	)

	var creator trans.CommandCreator
	if cfg.RowBufferPolicy == config.ClosePage {
		creator = &trans.ClosePageCommandCreator{AddrMapper: addrMapper}
	} else {
		creator = &trans.OpenPageCommandCreator{AddrMapper: addrMapper}
	}

	accessUnitBits := log2(cfg.Topology.TransactionSize(cfg.Timing.BL))
	splitter := trans.NewSubTransSplitter(accessUnitBits)

	subTransQueue := &trans.FCFSSubTransactionQueue{
		Capacity:   cfg.Timing.TransQueueDepth,
		CmdQueue:   commandQueue,
		CmdCreator: creator,
	}

	energyAcc := energy.NewAccumulator(
		cfg.Currents, cfg.Timing, cfg.Topology.NumRanks, cfg.Topology.NumBanks,
		cfg.HistogramBinSize,
	)

	c := &Comp{
		config:        cfg,
		addrMapper:    addrMapper,
		addrConverter: b.addrConverter,
		channel:       channel,
		commandQueue:  commandQueue,
		splitter:      splitter,
		subTransQueue: subTransQueue,
		energy:        energyAcc,
		transactions:  make(map[string]*transactionState),
	}
	c.TickingComponent = modeling.NewTickingComponent(name, b.engine, b.freq, c)
	c.refreshCountdown = make([]int, cfg.Topology.NumRanks)
	for r := range c.refreshCountdown {
		c.refreshCountdown[r] = cfg.Timing.RefreshPeriod * (r + 1) / cfg.Topology.NumRanks
	}

	c.poweredDown = make([]bool, cfg.Topology.NumRanks)

	c.topPort = modeling.NewPort(c, b.topBufferSize, b.topBufferSize, name+".Top")
	c.AddPort("Top", c.topPort)

	mw := &middleware{Comp: c}
	c.AddMiddleware(mw)

	return c
}

func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}

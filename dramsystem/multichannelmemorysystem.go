package dramsystem

import (
	"fmt"
	"io"

	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/mem"
	"github.com/aka-sps/dramsim2/sim/timing"
)

// MultiChannelMemorySystem shards a flat address space across several
// single-channel MemorySystems by the classic round-robin interleaving
// granularity of one transaction's worth of bytes, and paces the channels'
// event-driven ticking against a host-supplied CPU clock through a
// ClockDomainCrosser.
type MultiChannelMemorySystem struct {
	channels         []*MemorySystem
	interleavingSize uint64

	dramFreq timing.Freq
	crosser  *ClockDomainCrosser

	readDone    ReadDoneCallback
	writeDone   WriteDoneCallback
	reportPower PowerCallback

	vis *VisWriter
}

// NewMultiChannelMemorySystem creates numChans MemorySystems, each wrapping
// its own DRAM channel built from cfg with NumChans forced to 1 (the
// channel field of the address mapping is unused; channel selection is done
// here, by interleaving, instead).
func NewMultiChannelMemorySystem(engine timing.Engine, dramFreq timing.Freq, cfg config.Config, numChans int, name string) *MultiChannelMemorySystem {
	perChanCfg := cfg
	perChanCfg.Topology.NumChans = 1

	interleavingSize := uint64(perChanCfg.Topology.TransactionSize(perChanCfg.Timing.BL))

	channels := make([]*MemorySystem, numChans)
	for i := range channels {
		conv := mem.InterleavingConverter{
			InterleavingSize:    interleavingSize,
			TotalNumOfElements:  numChans,
			CurrentElementIndex: i,
		}

		channels[i] = NewMemorySystem(i, engine, dramFreq, perChanCfg, conv, fmt.Sprintf("%s.Chan%d", name, i))
	}

	return &MultiChannelMemorySystem{
		channels:         channels,
		interleavingSize: interleavingSize,
		dramFreq:         dramFreq,
		crosser:          NewClockDomainCrosser(1, 1),
	}
}

func (s *MultiChannelMemorySystem) channelIndex(addr uint64) int {
	return int((addr / s.interleavingSize) % uint64(len(s.channels)))
}

// AddTransaction routes a read or write at addr to the channel its address
// maps to, returning false iff that channel's host port buffer is full.
func (s *MultiChannelMemorySystem) AddTransaction(isWrite bool, addr uint64) bool {
	return s.channels[s.channelIndex(addr)].AddTransaction(isWrite, addr)
}

// WillAcceptTransaction reports whether every channel currently has room
// for a new transaction.
func (s *MultiChannelMemorySystem) WillAcceptTransaction() bool {
	for _, ch := range s.channels {
		if !ch.WillAcceptTransaction() {
			return false
		}
	}

	return true
}

// WillAcceptTransactionAt reports whether the channel addr maps to
// currently has room for a new transaction.
func (s *MultiChannelMemorySystem) WillAcceptTransactionAt(addr uint64) bool {
	return s.channels[s.channelIndex(addr)].WillAcceptTransaction()
}

// SetCPUClockSpeed reconfigures the crosser pacing channel ticking against
// the host's clock. hz == 0 requests a 1:1 ratio with the DRAM clock.
func (s *MultiChannelMemorySystem) SetCPUClockSpeed(hz uint64) {
	if hz == 0 {
		s.crosser = NewClockDomainCrosser(1, 1)
		return
	}

	s.crosser = NewClockDomainCrosserFromRatio(float64(s.dramFreq) / float64(hz))
}

// Update advances the system by one host CPU cycle. Depending on the
// crosser's ratio this drains every channel's event engine to quiescence
// zero, one, or more times.
func (s *MultiChannelMemorySystem) Update() {
	s.crosser.Update(func() {
		for _, ch := range s.channels {
			ch.Update()
		}
	})
}

// RegisterCallbacks installs the read/write completion and per-epoch power
// callbacks on every channel.
func (s *MultiChannelMemorySystem) RegisterCallbacks(readDone ReadDoneCallback, writeDone WriteDoneCallback, reportPower PowerCallback) {
	s.readDone = readDone
	s.writeDone = writeDone
	s.reportPower = reportPower

	for _, ch := range s.channels {
		ch.RegisterCallbacks(readDone, writeDone, reportPower)
	}
}

// PrintStats writes every channel's stats to w.
func (s *MultiChannelMemorySystem) PrintStats(w io.Writer, final bool) {
	for _, ch := range s.channels {
		ch.PrintStats(w, final)
	}

	s.writeVis(final)
}

// SetVisOutput directs per-epoch energy snapshots to a ".vis" CSV file at
// path, created (and overwritten if it already exists) immediately.
func (s *MultiChannelMemorySystem) SetVisOutput(path string) {
	numRanks := s.channels[0].Channel().Topology().NumRanks
	s.vis = NewVisWriter(path, len(s.channels), numRanks)
}

func (s *MultiChannelMemorySystem) writeVis(final bool) {
	if s.vis == nil {
		return
	}

	channelRanks := make([][]RankEnergy, len(s.channels))

	for c, ch := range s.channels {
		ranks := ch.Channel().EnergyRanks()
		energies := make([]RankEnergy, len(ranks))

		for r, acc := range ranks {
			energies[r] = RankEnergy{
				Background: acc.Background, Burst: acc.Burst,
				ActPre: acc.ActPre, Refresh: acc.Refresh,
			}
		}

		channelRanks[c] = energies
	}

	var bins, counts []int
	if final {
		bins, counts = s.channels[0].Channel().HistogramBins()
	}

	s.vis.Finalize(final, channelRanks, bins, counts)
}

// AttachVerificationRecorder subscribes rec to every command issued by
// every channel in the system.
func (s *MultiChannelMemorySystem) AttachVerificationRecorder(rec *VerificationRecorder) {
	for _, ch := range s.channels {
		ch.AttachVerificationRecorder(rec)
	}
}

// GetIniBool fetches a boolean-valued configuration key, writing it into
// out and returning 0 on success or -1 if the key is not recognised.
func (s *MultiChannelMemorySystem) GetIniBool(field string, out *bool) int {
	v, ok := s.channels[0].Channel().Config().GetIniBool(field)
	if !ok {
		return -1
	}

	*out = v

	return 0
}

// GetIniUint fetches an integer-valued configuration key.
func (s *MultiChannelMemorySystem) GetIniUint(field string, out *uint) int {
	v, ok := s.channels[0].Channel().Config().GetIniUint(field)
	if !ok {
		return -1
	}

	*out = v

	return 0
}

// GetIniUint64 fetches an integer-valued configuration key.
func (s *MultiChannelMemorySystem) GetIniUint64(field string, out *uint64) int {
	v, ok := s.channels[0].Channel().Config().GetIniUint64(field)
	if !ok {
		return -1
	}

	*out = v

	return 0
}

// GetIniFloat fetches a floating-point-valued configuration key.
func (s *MultiChannelMemorySystem) GetIniFloat(field string, out *float64) int {
	v, ok := s.channels[0].Channel().Config().GetIniFloat(field)
	if !ok {
		return -1
	}

	*out = v

	return 0
}

// NumChannels returns the number of channels the system was built with.
func (s *MultiChannelMemorySystem) NumChannels() int { return len(s.channels) }

// Channel returns the MemorySystem for channel i.
func (s *MultiChannelMemorySystem) Channel(i int) *MemorySystem { return s.channels[i] }

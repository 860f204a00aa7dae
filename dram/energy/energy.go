// Package energy accumulates the per-rank energy counters and the
// per-bank latency histogram a DRAM channel reports each epoch.
package energy

import (
	"sort"

	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/signal"
)

// RankAccumulator holds the mA-cycle energy counters for one rank.
type RankAccumulator struct {
	Background float64
	Burst      float64
	ActPre     float64
	Refresh    float64
}

// Accumulator tracks per-rank energy and a latency histogram across a
// whole channel. Its per-rank counters are cleared by ResetEpoch, which the
// dram controller exposes as Comp.ResetEnergyEpoch and the host calls at
// every epoch boundary.
type Accumulator struct {
	Currents config.IDDCurrents
	Timing   config.Timing
	NumRanks int

	ranks []RankAccumulator

	histogramBinSize int
	histogram        map[int]int

	bankLatencySum   [][]float64
	bankAccessCount  [][]int
}

// NewAccumulator creates an Accumulator for a channel with numRanks ranks
// and numBanks banks per rank.
func NewAccumulator(currents config.IDDCurrents, t config.Timing, numRanks, numBanks, histogramBinSize int) *Accumulator {
	bankLatencySum := make([][]float64, numRanks)
	bankAccessCount := make([][]int, numRanks)

	for r := 0; r < numRanks; r++ {
		bankLatencySum[r] = make([]float64, numBanks)
		bankAccessCount[r] = make([]int, numBanks)
	}

	return &Accumulator{
		Currents:         currents,
		Timing:           t,
		NumRanks:         numRanks,
		ranks:            make([]RankAccumulator, numRanks),
		histogramBinSize: histogramBinSize,
		histogram:        make(map[int]int),
		bankLatencySum:   bankLatencySum,
		bankAccessCount:  bankAccessCount,
	}
}

// AccountCommand adds the burst/activate-precharge/refresh energy implied
// by dispatching cmd.
func (a *Accumulator) AccountCommand(cmd *signal.Command, numDevices int) {
	r := &a.ranks[cmd.Rank]
	c := a.Currents
	t := a.Timing

	switch cmd.Kind {
	case signal.CmdKindRead, signal.CmdKindReadP:
		r.Burst += (c.IDD4R - c.IDD3N) * float64(t.BL/2) * float64(numDevices)
	case signal.CmdKindWrite, signal.CmdKindWriteP:
		r.Burst += (c.IDD4W - c.IDD3N) * float64(t.BL/2) * float64(numDevices)
	case signal.CmdKindActivate:
		r.ActPre += (c.IDD0*float64(t.RC) -
			(c.IDD3N*float64(t.RAS) + c.IDD2N*float64(t.RC-t.RAS))) * float64(numDevices)
	case signal.CmdKindRefresh:
		r.Refresh += (c.IDD5 - c.IDD3N) * float64(t.RFC) * float64(numDevices)
	}
}

// AccountBackground adds one cycle's background energy for rank, selected
// by whether it is powered down, has any active/refreshing bank, or is
// fully idle.
func (a *Accumulator) AccountBackground(rank int, anyActive, poweredDown bool, numDevices int) {
	r := &a.ranks[rank]
	c := a.Currents

	switch {
	case anyActive:
		r.Background += c.IDD3N * float64(numDevices)
	case poweredDown:
		r.Background += c.IDD2P * float64(numDevices)
	default:
		r.Background += c.IDD2N * float64(numDevices)
	}
}

// RecordLatency records a completed access's latency into the per-bank
// epoch sum and the channel-wide histogram.
func (a *Accumulator) RecordLatency(rank, bank int, latencyCycles int) {
	a.bankLatencySum[rank][bank] += float64(latencyCycles)
	a.bankAccessCount[rank][bank]++

	bin := (latencyCycles / a.histogramBinSize) * a.histogramBinSize
	a.histogram[bin]++
}

// Ranks returns the accumulated per-rank energy counters.
func (a *Accumulator) Ranks() []RankAccumulator {
	return a.ranks
}

// ResetEpoch clears the per-rank energy counters and per-bank latency
// sums, as done at the start of every epoch. The histogram persists: it
// is reported cumulatively at the end of the run.
func (a *Accumulator) ResetEpoch() {
	for i := range a.ranks {
		a.ranks[i] = RankAccumulator{}
	}

	for r := range a.bankLatencySum {
		for b := range a.bankLatencySum[r] {
			a.bankLatencySum[r][b] = 0
			a.bankAccessCount[r][b] = 0
		}
	}
}

// HistogramBins returns the histogram's bin lower-bounds in increasing
// order together with their counts, suitable for emitting
// "!!HISTOGRAM_DATA" output.
func (a *Accumulator) HistogramBins() (bins []int, counts []int) {
	for bin := range a.histogram {
		bins = append(bins, bin)
	}

	sort.Ints(bins)

	for _, bin := range bins {
		counts = append(counts, a.histogram[bin])
	}

	return bins, counts
}

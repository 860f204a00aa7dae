package cmdq

import (
	"log"

	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dram/internal/org"
	"github.com/aka-sps/dramsim2/dram/signal"
)

// CommandQueueImpl is the concrete CommandQueue. Storage is a 3-D
// container queues[rank][bankIndex], where bankIndex has arity 1 under
// PerRank queuing or NumBanks under PerRankPerBank.
type CommandQueueImpl struct {
	Channel  org.Channel
	Timing   config.Timing
	Topology config.Topology

	RowBufferPolicy config.RowBufferPolicy
	Scheduling      config.SchedulingPolicy
	Queuing         config.QueuingStructure

	queues        [][][]*signal.Command
	tFAWCountdown [][]int

	refreshWaiting bool
	refreshRank    int

	nextRank, nextBank       int
	nextRankPRE, nextBankPRE int
	sendAct                  bool
}

// NewCommandQueueImpl allocates a CommandQueueImpl's FIFOs for the given
// topology and queuing structure.
func NewCommandQueueImpl(
	channel org.Channel,
	t config.Timing,
	topo config.Topology,
	rowBufferPolicy config.RowBufferPolicy,
	scheduling config.SchedulingPolicy,
	queuing config.QueuingStructure,
) *CommandQueueImpl {
	bankArity := 1
	if queuing == config.PerRankPerBank {
		bankArity = topo.NumBanks
	}

	queues := make([][][]*signal.Command, topo.NumRanks)
	for r := range queues {
		queues[r] = make([][]*signal.Command, bankArity)
	}

	return &CommandQueueImpl{
		Channel:         channel,
		Timing:          t,
		Topology:        topo,
		RowBufferPolicy: rowBufferPolicy,
		Scheduling:      scheduling,
		Queuing:         queuing,
		queues:          queues,
		tFAWCountdown:   make([][]int, topo.NumRanks),
	}
}

func (q *CommandQueueImpl) bankIndex(bank int) int {
	if q.Queuing == config.PerRankPerBank {
		return bank
	}

	return 0
}

// HasRoomFor reports whether the FIFO serving (rank, bank) has at least n
// free slots against CmdQueueDepth.
func (q *CommandQueueImpl) HasRoomFor(n, rank, bank int) bool {
	fifo := q.queues[rank][q.bankIndex(bank)]
	return len(fifo)+n <= q.Timing.CmdQueueDepth
}

// Enqueue appends cmd to the FIFO selected by its (rank, bank). Overflow
// past CmdQueueDepth is fatal: callers must call HasRoomFor first.
func (q *CommandQueueImpl) Enqueue(cmd *signal.Command) {
	bi := q.bankIndex(cmd.Bank)
	fifo := q.queues[cmd.Rank][bi]

	if len(fifo) >= q.Timing.CmdQueueDepth {
		log.Panicf("cmdq: command queue overflow at rank %d bank %d", cmd.Rank, cmd.Bank)
	}

	q.queues[cmd.Rank][bi] = append(fifo, cmd)
}

// IsEmpty reports whether every FIFO owned by rank is empty.
func (q *CommandQueueImpl) IsEmpty(rank int) bool {
	for _, fifo := range q.queues[rank] {
		if len(fifo) > 0 {
			return false
		}
	}

	return true
}

// NeedRefresh arms the refresh path for rank.
func (q *CommandQueueImpl) NeedRefresh(rank int) {
	q.refreshWaiting = true
	q.refreshRank = rank
}

// GetCommandToIssue runs one cycle's worth of selection: tFAW bookkeeping,
// then the refresh path if armed, then the normal scheduling path.
func (q *CommandQueueImpl) GetCommandToIssue() *signal.Command {
	q.tickTFAW()

	if q.refreshWaiting {
		if cmd := q.tryRefresh(); cmd != nil {
			return cmd
		}

		return nil
	}

	cmd := q.tryNormalPath()
	if cmd == nil && q.RowBufferPolicy == config.OpenPage {
		cmd = q.tryPrechargeFallback()
	}

	return cmd
}

func (q *CommandQueueImpl) tickTFAW() {
	for r := range q.tFAWCountdown {
		counters := q.tFAWCountdown[r][:0]

		for _, c := range q.tFAWCountdown[r] {
			c--
			if c > 0 {
				counters = append(counters, c)
			}
		}

		q.tFAWCountdown[r] = counters
	}
}

func (q *CommandQueueImpl) noteActivate(rank int) {
	q.tFAWCountdown[rank] = append(q.tFAWCountdown[rank], q.Timing.FAW)
}

// isIssuable implements the per-kind predicate of the spec: bank-state
// readiness plus, for ACTIVATE, the tFAW window.
func (q *CommandQueueImpl) isIssuable(cmd *signal.Command) bool {
	st := q.Channel.BankState(cmd.Rank, cmd.Bank)
	now := q.Channel.Now()

	switch cmd.Kind {
	case signal.CmdKindActivate:
		return (st.State == org.Idle || st.State == org.Refreshing) &&
			now >= st.NextActivate &&
			len(q.tFAWCountdown[cmd.Rank]) < 4
	case signal.CmdKindRead, signal.CmdKindReadP:
		return st.State == org.RowActive && cmd.Row == st.OpenRow &&
			now >= st.NextRead && st.RowAccessCount < q.Timing.TotalRowAccesses
	case signal.CmdKindWrite, signal.CmdKindWriteP:
		return st.State == org.RowActive && cmd.Row == st.OpenRow &&
			now >= st.NextWrite && st.RowAccessCount < q.Timing.TotalRowAccesses
	case signal.CmdKindPrecharge:
		return st.State == org.RowActive && now >= st.NextPrecharge
	case signal.CmdKindRefresh:
		return true
	default:
		return false
	}
}

// tryRefresh attempts to drain rank's open rows and, once every bank is
// idle, synthesises the REFRESH command.
func (q *CommandQueueImpl) tryRefresh() *signal.Command {
	rank := q.refreshRank
	allIdle := true

	for bank := 0; bank < q.Topology.NumBanks; bank++ {
		st := q.Channel.BankState(rank, bank)

		if st.State == org.PowerDown {
			continue
		}

		if st.State != org.RowActive {
			if st.State != org.Idle {
				allIdle = false
			}

			continue
		}

		allIdle = false

		if cmd := q.drainOpenRow(rank, bank, st); cmd != nil {
			return cmd
		}

		if st.NextActivate > q.Channel.Now() {
			return nil
		}
	}

	if !allIdle {
		return nil
	}

	cmd := &signal.Command{Kind: signal.CmdKindRefresh, Rank: rank, Bank: 0}
	q.refreshWaiting = false

	return cmd
}

func (q *CommandQueueImpl) drainOpenRow(rank, bank int, st *org.BankState) *signal.Command {
	fifo := q.queues[rank][q.bankIndex(bank)]

	for i, cmd := range fifo {
		if cmd.Bank != bank || cmd.Row != st.OpenRow || !cmd.Kind.IsColumnAccess() {
			continue
		}

		if !q.isIssuable(cmd) {
			break
		}

		q.removeFromFIFO(rank, q.bankIndex(bank), i)

		return cmd
	}

	if q.RowBufferPolicy == config.ClosePage {
		pre := &signal.Command{Kind: signal.CmdKindPrecharge, Rank: rank, Bank: bank, Row: st.OpenRow}
		if q.isIssuable(pre) {
			return pre
		}
	}

	return nil
}

func (q *CommandQueueImpl) removeFromFIFO(rank, bankIndex, i int) *signal.Command {
	fifo := q.queues[rank][bankIndex]
	cmd := fifo[i]
	q.queues[rank][bankIndex] = append(fifo[:i], fifo[i+1:]...)

	return cmd
}

// tryNormalPath round-robins over (rank, bankIndex) FIFOs starting from
// (nextRank, nextBank) and issues the first issuable entry it finds,
// skipping column accesses that would reorder ahead of an earlier command
// to the same bank.
func (q *CommandQueueImpl) tryNormalPath() *signal.Command {
	numRank := len(q.queues)
	bankArity := len(q.queues[0])
	total := numRank * bankArity

	for i := 0; i < total; i++ {
		idx := (q.nextRank*bankArity + q.nextBank + i) % total
		rank := idx / bankArity
		bi := idx % bankArity

		if cmd := q.scanQueue(rank, bi); cmd != nil {
			q.gateAndAdvance(cmd, rank, bi)
			return cmd
		}
	}

	return nil
}

// gateAndAdvance implements the posted-CAS sendAct gate: right after an
// ACTIVATE issues with AL > 0, the round-robin pointer must not move, so
// the very next call picks up the paired column access from the same
// bank. Any other dispatch clears the gate and advances normally.
func (q *CommandQueueImpl) gateAndAdvance(cmd *signal.Command, rank, bankIndex int) {
	if q.Timing.AL > 0 && cmd.Kind == signal.CmdKindActivate {
		q.sendAct = true
		return
	}

	q.sendAct = false
	q.advanceRoundRobin(rank, bankIndex)
}

func (q *CommandQueueImpl) scanQueue(rank, bankIndex int) *signal.Command {
	fifo := q.queues[rank][bankIndex]
	seenBanks := make(map[int]bool)

	for i, cmd := range fifo {
		if q.Queuing == config.PerRankPerBank && i > 0 {
			break
		}

		if seenBanks[cmd.Bank] {
			// An earlier, still-queued command targets this bank;
			// issuing cmd first would reorder ahead of it.
			continue
		}

		if !q.isIssuable(cmd) {
			// Under OpenPage an ACTIVATE that was queued against a row
			// its own bank had already opened by the time it was
			// enqueued never becomes issuable on its own (the bank stays
			// RowActive); it is not traffic, so it must not block later
			// entries to the same bank the way a stuck column access
			// does.
			if q.RowBufferPolicy != config.OpenPage || cmd.Kind != signal.CmdKindActivate {
				seenBanks[cmd.Bank] = true
			}

			continue
		}

		if q.RowBufferPolicy == config.OpenPage && cmd.Kind.IsColumnAccess() && i > 0 {
			if prev := fifo[i-1]; prev.Kind == signal.CmdKindActivate &&
				prev.Bank == cmd.Bank && prev.Row == cmd.Row {
				// cmd's row was already open when it was enqueued, so its
				// own paired ACTIVATE (immediately ahead of it in the
				// FIFO) is redundant and would sit here forever
				// otherwise: drop it alongside cmd.
				q.removeFromFIFO(rank, bankIndex, i-1)
				q.removeFromFIFO(rank, bankIndex, i-1)

				return cmd
			}
		}

		q.removeFromFIFO(rank, bankIndex, i)

		if cmd.Kind == signal.CmdKindActivate {
			q.noteActivate(cmd.Rank)
		}

		return cmd
	}

	return nil
}

// tryPrechargeFallback is the OpenPage fallback: close an open bank with
// no pending traffic to its row, or that has hit the row-hammer cap, so a
// future transaction can open a different row.
func (q *CommandQueueImpl) tryPrechargeFallback() *signal.Command {
	numRank := len(q.queues)
	bankArity := q.Topology.NumBanks
	total := numRank * bankArity

	for i := 0; i < total; i++ {
		idx := (q.nextRankPRE*bankArity + q.nextBankPRE + i) % total
		rank := idx / bankArity
		bank := idx % bankArity

		st := q.Channel.BankState(rank, bank)
		if st.State != org.RowActive {
			continue
		}

		if !q.bankHasNoPendingRowTraffic(rank, bank, st) {
			continue
		}

		q.nextRankPRE = rank
		q.nextBankPRE = bank

		pre := &signal.Command{Kind: signal.CmdKindPrecharge, Rank: rank, Bank: bank, Row: st.OpenRow}
		if q.isIssuable(pre) {
			q.advancePRE(rank, bank)
			return pre
		}

		return nil
	}

	return nil
}

func (q *CommandQueueImpl) bankHasNoPendingRowTraffic(rank, bank int, st *org.BankState) bool {
	if st.RowAccessCount >= q.Timing.TotalRowAccesses {
		return true
	}

	for _, cmd := range q.queues[rank][q.bankIndex(bank)] {
		if cmd.Bank == bank && cmd.Row == st.OpenRow {
			return false
		}
	}

	return true
}

func (q *CommandQueueImpl) advanceRoundRobin(rank, bank int) {
	bankArity := len(q.queues[0])
	bi := q.bankIndex(bank)

	if q.Scheduling == config.RankThenBankRoundRobin {
		rank = (rank + 1) % len(q.queues)
		if rank == 0 {
			bi = (bi + 1) % bankArity
		}
	} else {
		bi = (bi + 1) % bankArity
		if bi == 0 {
			rank = (rank + 1) % len(q.queues)
		}
	}

	q.nextRank = rank
	q.nextBank = bi
}

func (q *CommandQueueImpl) advancePRE(rank, bank int) {
	bankArity := q.Topology.NumBanks
	bank = (bank + 1) % bankArity

	if bank == 0 {
		rank = (rank + 1) % len(q.queues)
	}

	q.nextRankPRE = rank
	q.nextBankPRE = bank
}

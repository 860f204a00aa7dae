package trans

import (
	"log"

	"github.com/aka-sps/dramsim2/dram/internal/cmdq"
	"github.com/aka-sps/dramsim2/dram/signal"
)

// SubTransactionQueue is a queue for subtransactions awaiting conversion
// into ACTIVATE/column command pairs.
type SubTransactionQueue interface {
	// CanPush reports whether the queue has room for n more
	// subtransactions.
	CanPush(n int) bool

	// Push enqueues every subtransaction of t.
	Push(t *signal.Transaction)

	// Tick attempts to dispatch the head of the queue into the command
	// queue; it returns true if it made progress.
	Tick() bool
}

// FCFSSubTransactionQueue dispatches subtransactions in first-come,
// first-served order, stopping after the first one it cannot fit into the
// command queue this cycle.
type FCFSSubTransactionQueue struct {
	Capacity   int
	CmdQueue   cmdq.CommandQueue
	CmdCreator CommandCreator

	pending []*signal.SubTransaction
}

// CanPush reports whether the queue has room for n more subtransactions.
func (q *FCFSSubTransactionQueue) CanPush(n int) bool {
	return len(q.pending)+n <= q.Capacity
}

// Push enqueues every subtransaction of t.
func (q *FCFSSubTransactionQueue) Push(t *signal.Transaction) {
	if len(q.pending)+len(t.SubTransactions) > q.Capacity {
		log.Panicf("trans: subtransaction queue overflow")
	}

	q.pending = append(q.pending, t.SubTransactions...)
}

// Tick dispatches the head-of-queue subtransaction into the command queue
// if it fits, one subtransaction per cycle.
func (q *FCFSSubTransactionQueue) Tick() bool {
	if len(q.pending) == 0 {
		return false
	}

	sub := q.pending[0]
	activate, column := q.CmdCreator.Create(sub)

	if !q.CmdQueue.HasRoomFor(2, activate.Rank, activate.Bank) {
		return false
	}

	q.CmdQueue.Enqueue(activate)
	q.CmdQueue.Enqueue(column)
	q.pending = q.pending[1:]

	return true
}

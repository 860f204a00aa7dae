// Package cmdq implements the per-channel command queue: the FIFOs of
// not-yet-issued Commands and the per-cycle selection of at most one
// issuable Command under the configured timing, ordering, and refresh
// constraints.
package cmdq

import "github.com/aka-sps/dramsim2/dram/signal"

// CommandQueue holds Commands waiting to be dispatched to a channel's
// command bus and selects the next issuable one every cycle.
type CommandQueue interface {
	// HasRoomFor reports whether the FIFO(s) serving (rank, bank) can
	// accept n more commands.
	HasRoomFor(n, rank, bank int) bool

	// Enqueue appends cmd to the FIFO selected by its (rank, bank).
	// Overflowing a FIFO's capacity is a programming error; callers
	// must check HasRoomFor first.
	Enqueue(cmd *signal.Command)

	// GetCommandToIssue returns the next command to dispatch this
	// cycle, or nil if nothing is issuable. At most one command is
	// returned per call.
	GetCommandToIssue() *signal.Command

	// IsEmpty reports whether every FIFO owned by rank is empty.
	IsEmpty(rank int) bool

	// NeedRefresh arms the refresh path for rank: the next
	// GetCommandToIssue calls will drain rank's open rows and then
	// synthesise a REFRESH command for it.
	NeedRefresh(rank int)
}

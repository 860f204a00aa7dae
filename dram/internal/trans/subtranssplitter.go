// Package trans turns accepted Transactions into SubTransactions sized to
// fit one access unit, queues them, and turns each into the ACTIVATE plus
// column-access Command pair the command queue dispatches.
package trans

import (
	"github.com/aka-sps/dramsim2/dram/internal/addressmapping"
	"github.com/aka-sps/dramsim2/dram/signal"
)

// SubTransSplitter splits a Transaction into one or more SubTransactions,
// each no larger than one access unit, and appends them to
// Transaction.SubTransactions.
type SubTransSplitter interface {
	Split(t *signal.Transaction)
}

// DefaultSubTransSplitter splits on access-unit boundaries, where an
// access unit is 1<<accessUnitBits bytes.
type DefaultSubTransSplitter struct {
	accessUnitBits uint
}

// NewSubTransSplitter creates a DefaultSubTransSplitter whose access unit
// is 1<<accessUnitBits bytes.
func NewSubTransSplitter(accessUnitBits int) *DefaultSubTransSplitter {
	return &DefaultSubTransSplitter{accessUnitBits: uint(accessUnitBits)}
}

// Split decomposes t into SubTransactions, one per access unit its address
// range touches.
func (s *DefaultSubTransSplitter) Split(t *signal.Transaction) {
	unitSize := uint64(1) << s.accessUnitBits
	start := t.InternalAddress
	end := start + t.AccessByteSize()

	for addr := start; addr < end; {
		unitEnd := (addr/unitSize + 1) * unitSize
		if unitEnd > end {
			unitEnd = end
		}

		sub := &signal.SubTransaction{
			Transaction:     t,
			InternalAddress: addr,
			ByteSize:        unitEnd - addr,
		}

		if t.IsWrite() {
			offset := addr - start
			sub.Data = t.Write.Data[offset : offset+(unitEnd-addr)]
		}

		t.SubTransactions = append(t.SubTransactions, sub)
		addr = unitEnd
	}
}

// CommandCreator converts a SubTransaction into the ACTIVATE + column
// Command pair the command queue will dispatch, selecting the column kind
// from the configured row-buffer policy.
type CommandCreator interface {
	Create(sub *signal.SubTransaction) (activate, column *signal.Command)
}

// ClosePageCommandCreator always pairs the column access with an implicit
// precharge (READ_P/WRITE_P).
type ClosePageCommandCreator struct {
	AddrMapper addressmapping.Mapper
}

// Create builds the ACTIVATE/column pair for sub under the close-page
// policy.
func (c *ClosePageCommandCreator) Create(sub *signal.SubTransaction) (*signal.Command, *signal.Command) {
	loc := c.AddrMapper.Map(sub.InternalAddress)

	activate := &signal.Command{
		Kind: signal.CmdKindActivate,
		Rank: loc.Rank, Bank: loc.Bank, Row: loc.Row,
	}

	kind := signal.CmdKindWriteP
	if sub.IsRead() {
		kind = signal.CmdKindReadP
	}

	column := &signal.Command{
		Kind: kind,
		Rank: loc.Rank, Bank: loc.Bank, Row: loc.Row, Col: loc.Col,
		Data: sub.Data,
		Sub:  sub,
	}

	return activate, column
}

// OpenPageCommandCreator leaves the row open after the column access,
// betting on locality from a following access to the same row.
type OpenPageCommandCreator struct {
	AddrMapper addressmapping.Mapper
}

// Create builds the ACTIVATE/column pair for sub under the open-page
// policy.
func (c *OpenPageCommandCreator) Create(sub *signal.SubTransaction) (*signal.Command, *signal.Command) {
	loc := c.AddrMapper.Map(sub.InternalAddress)

	activate := &signal.Command{
		Kind: signal.CmdKindActivate,
		Rank: loc.Rank, Bank: loc.Bank, Row: loc.Row,
	}

	kind := signal.CmdKindRead
	if !sub.IsRead() {
		kind = signal.CmdKindWrite
	}

	column := &signal.Command{
		Kind: kind,
		Rank: loc.Rank, Bank: loc.Bank, Row: loc.Row, Col: loc.Col,
		Data: sub.Data,
		Sub:  sub,
	}

	return activate, column
}

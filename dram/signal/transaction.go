package signal

import "github.com/aka-sps/dramsim2/mem"

// TransactionType distinguishes a read transaction from a write.
type TransactionType int

// The two kinds of transaction the controller accepts.
const (
	TransactionTypeRead TransactionType = iota
	TransactionTypeWrite
)

// Transaction is the state associated with the processing of a single read
// or write request accepted on the controller's top port.
type Transaction struct {
	Type  TransactionType
	Read  mem.ReadReq
	Write mem.WriteReq

	InternalAddress uint64
	TimeAdded       float64

	SubTransactions []*SubTransaction
}

// GlobalAddress returns the address the transaction is accessing, as seen
// by the transaction's sender.
func (t *Transaction) GlobalAddress() uint64 {
	if t.Type == TransactionTypeRead {
		return t.Read.Address
	}

	return t.Write.Address
}

// AccessByteSize returns the number of bytes the transaction is accessing.
func (t *Transaction) AccessByteSize() uint64 {
	if t.Type == TransactionTypeRead {
		return t.Read.AccessByteSize
	}

	return uint64(len(t.Write.Data))
}

// IsRead returns true if the transaction is a read transaction.
func (t *Transaction) IsRead() bool {
	return t.Type == TransactionTypeRead
}

// IsWrite returns true if the transaction is a write transaction.
func (t *Transaction) IsWrite() bool {
	return t.Type == TransactionTypeWrite
}

// IsCompleted returns true if every subtransaction the transaction was
// split into has finished.
func (t *Transaction) IsCompleted() bool {
	for _, st := range t.SubTransactions {
		if !st.Completed {
			return false
		}
	}

	return true
}

// ReadData concatenates the data carried back by the transaction's
// subtransactions, in subtransaction order. Only meaningful for reads.
func (t *Transaction) ReadData() []byte {
	data := make([]byte, 0, t.AccessByteSize())
	for _, st := range t.SubTransactions {
		data = append(data, st.Data...)
	}

	return data
}

// SubTransaction is the portion of a Transaction that fits within one
// access unit (one burst's worth of columns in one bank). A Transaction
// whose span crosses an access unit boundary is split into more than one
// SubTransaction; each becomes exactly one ACTIVATE+column command pair.
type SubTransaction struct {
	Transaction *Transaction

	InternalAddress uint64
	ByteSize        uint64
	Data            []byte

	// Completed is set once the bank has produced (read) or consumed
	// (write) the subtransaction's data.
	Completed bool
}

// IsRead reports whether the owning transaction is a read.
func (s *SubTransaction) IsRead() bool {
	return s.Transaction.IsRead()
}

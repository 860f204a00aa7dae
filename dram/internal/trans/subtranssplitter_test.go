package trans

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aka-sps/dramsim2/dram/signal"
	"github.com/aka-sps/dramsim2/mem"
)

func TestDefaultSubTransSplitterKeepsAnAlignedRequestInOneUnit(t *testing.T) {
	splitter := NewSubTransSplitter(6) // 64-byte access unit

	tr := &signal.Transaction{
		Type:            signal.TransactionTypeRead,
		Read:            mem.ReadReq{Address: 64, AccessByteSize: 32},
		InternalAddress: 64,
	}

	splitter.Split(tr)

	require.Len(t, tr.SubTransactions, 1)
	require.Equal(t, uint64(64), tr.SubTransactions[0].InternalAddress)
	require.Equal(t, uint64(32), tr.SubTransactions[0].ByteSize)
}

func TestDefaultSubTransSplitterSplitsAnAccessStraddlingTwoUnits(t *testing.T) {
	splitter := NewSubTransSplitter(6) // 64-byte access unit

	tr := &signal.Transaction{
		Type:            signal.TransactionTypeRead,
		Read:            mem.ReadReq{Address: 48, AccessByteSize: 32},
		InternalAddress: 48,
	}

	splitter.Split(tr)

	require.Len(t, tr.SubTransactions, 2)
	require.Equal(t, uint64(48), tr.SubTransactions[0].InternalAddress)
	require.Equal(t, uint64(16), tr.SubTransactions[0].ByteSize)
	require.Equal(t, uint64(64), tr.SubTransactions[1].InternalAddress)
	require.Equal(t, uint64(16), tr.SubTransactions[1].ByteSize)
}

func TestDefaultSubTransSplitterSlicesWriteDataPerSubTransaction(t *testing.T) {
	splitter := NewSubTransSplitter(6)

	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}

	tr := &signal.Transaction{
		Type:            signal.TransactionTypeWrite,
		Write:           mem.WriteReq{Address: 48, Data: data},
		InternalAddress: 48,
	}

	splitter.Split(tr)

	require.Len(t, tr.SubTransactions, 2)
	require.Equal(t, data[:16], tr.SubTransactions[0].Data)
	require.Equal(t, data[16:], tr.SubTransactions[1].Data)
}

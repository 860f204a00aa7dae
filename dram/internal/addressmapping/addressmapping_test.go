package addressmapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aka-sps/dramsim2/dram/config"
)

func buildMapper(t *testing.T, scheme config.AddressMappingScheme) Mapper {
	t.Helper()

	return MakeBuilder().
		WithScheme(scheme).
		WithBurstLength(8).
		WithBusWidth(64).
		WithNumChan(1).
		WithNumRank(2).
		WithNumBank(8).
		WithNumRow(16384).
		WithNumCol(1024).
		Build()
}

func TestMapperRoundTripsEveryScheme(t *testing.T) {
	schemes := []config.AddressMappingScheme{
		config.Scheme1, config.Scheme2, config.Scheme3, config.Scheme4,
		config.Scheme5, config.Scheme6, config.Scheme7, config.Scheme8,
	}

	for _, scheme := range schemes {
		m := buildMapper(t, scheme)

		loc := Location{Chan: 0, Rank: 1, Bank: 5, Row: 1234, Col: 56}
		addr := m.Unmap(loc)

		require.Equal(t, loc, m.Map(addr))
	}
}

func TestMapperSeparatesConsecutiveTransactionsIntoDistinctColumns(t *testing.T) {
	m := buildMapper(t, config.Scheme1)

	locA := m.Map(0)
	locB := m.Map(64) // one transaction's worth of bytes (64-bit bus * burst 8 / 8)

	require.NotEqual(t, locA.Col, locB.Col)
}

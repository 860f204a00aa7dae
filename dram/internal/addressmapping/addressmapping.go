// Package addressmapping decomposes a physical address into the
// channel/rank/bank/row/column coordinates a DRAM channel is organised
// around, using one of a fixed set of bit-field orderings.
package addressmapping

import "github.com/aka-sps/dramsim2/dram/config"

// Location is the decomposed form of an address: which channel, rank, bank,
// row, and column it targets.
type Location struct {
	Chan int
	Rank int
	Bank int
	Row  int
	Col  int
}

// Mapper converts between a flat address and its Location, and back.
type Mapper interface {
	Map(address uint64) Location
	Unmap(loc Location) uint64
}

func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}

// schemeMapper implements every AddressMappingScheme as a single
// parametrised bit-field packer/unpacker; the scheme only changes the
// order fields are placed in, not how each field's width is computed.
type schemeMapper struct {
	scheme config.AddressMappingScheme

	byteOffsetBits int
	colLoBits      int
	colHiBits      int
	bankBits       int
	rankBits       int
	rowBits        int
	chanBits       int
}

// fieldOrder returns the bit-field layout from LSB to MSB for the mapper's
// scheme. Every scheme keeps byte-offset as the lowest bits and channel as
// the highest; the schemes differ in how column-high/bank/rank/row
// interleave in between, trading off locality for parallelism.
func (m schemeMapper) fieldOrder() []string {
	switch m.scheme {
	case config.Scheme1:
		return []string{"byteOffset", "colLo", "colHi", "bank", "rank", "row", "chan"}
	case config.Scheme2:
		return []string{"byteOffset", "colLo", "bank", "rank", "colHi", "row", "chan"}
	case config.Scheme3:
		return []string{"byteOffset", "colLo", "colHi", "rank", "bank", "row", "chan"}
	case config.Scheme4:
		return []string{"byteOffset", "colLo", "bank", "colHi", "rank", "row", "chan"}
	case config.Scheme5:
		return []string{"byteOffset", "colLo", "colHi", "row", "bank", "rank", "chan"}
	case config.Scheme6:
		return []string{"byteOffset", "colLo", "row", "bank", "rank", "colHi", "chan"}
	case config.Scheme7:
		return []string{"byteOffset", "colLo", "colHi", "bank", "row", "rank", "chan"}
	case config.Scheme8:
		return []string{"byteOffset", "colLo", "rank", "bank", "colHi", "row", "chan"}
	default:
		return []string{"byteOffset", "colLo", "colHi", "bank", "rank", "row", "chan"}
	}
}

func (m schemeMapper) fieldWidth(name string) int {
	switch name {
	case "byteOffset":
		return m.byteOffsetBits
	case "colLo":
		return m.colLoBits
	case "colHi":
		return m.colHiBits
	case "bank":
		return m.bankBits
	case "rank":
		return m.rankBits
	case "row":
		return m.rowBits
	case "chan":
		return m.chanBits
	default:
		return 0
	}
}

// Map decomposes address into a Location by walking the scheme's field
// order from LSB to MSB, extracting each field's bits in turn.
func (m schemeMapper) Map(address uint64) Location {
	var loc Location

	var colLo, colHi uint64

	shift := uint(0)

	for _, field := range m.fieldOrder() {
		width := m.fieldWidth(field)
		if width == 0 {
			continue
		}

		mask := uint64(1)<<uint(width) - 1
		value := (address >> shift) & mask
		shift += uint(width)

		switch field {
		case "byteOffset":
		case "colLo":
			colLo = value
		case "colHi":
			colHi = value
		case "bank":
			loc.Bank = int(value)
		case "rank":
			loc.Rank = int(value)
		case "row":
			loc.Row = int(value)
		case "chan":
			loc.Chan = int(value)
		}
	}

	loc.Col = int(colHi<<uint(m.colLoBits) | colLo)

	return loc
}

// Unmap is the inverse of Map: it reassembles an address from a Location
// using the same field order and widths.
func (m schemeMapper) Unmap(loc Location) uint64 {
	colLoMask := uint64(1)<<uint(m.colLoBits) - 1
	colLo := uint64(loc.Col) & colLoMask
	colHi := uint64(loc.Col) >> uint(m.colLoBits)

	values := map[string]uint64{
		"byteOffset": 0,
		"colLo":      colLo,
		"colHi":      colHi,
		"bank":       uint64(loc.Bank),
		"rank":       uint64(loc.Rank),
		"row":        uint64(loc.Row),
		"chan":       uint64(loc.Chan),
	}

	var address uint64

	shift := uint(0)

	for _, field := range m.fieldOrder() {
		width := m.fieldWidth(field)
		if width == 0 {
			continue
		}

		address |= (values[field] & (uint64(1)<<uint(width) - 1)) << shift
		shift += uint(width)
	}

	return address
}

// Builder builds a Mapper from the topology it must address.
type Builder struct {
	scheme      config.AddressMappingScheme
	burstLength int
	busWidth    int
	numChan     int
	numRank     int
	numBank     int
	numRow      int
	numCol      int
}

// MakeBuilder creates a Builder with no topology configured; every
// With-method must be called before Build.
func MakeBuilder() Builder {
	return Builder{scheme: config.Scheme1}
}

// WithScheme sets the address mapping scheme.
func (b Builder) WithScheme(s config.AddressMappingScheme) Builder {
	b.scheme = s
	return b
}

// WithBurstLength sets the burst length used to size the column-low field.
func (b Builder) WithBurstLength(n int) Builder {
	b.burstLength = n
	return b
}

// WithBusWidth sets the data bus width in bits, used to size the byte
// offset field together with the burst length.
func (b Builder) WithBusWidth(bits int) Builder {
	b.busWidth = bits
	return b
}

// WithNumChan sets the number of channels.
func (b Builder) WithNumChan(n int) Builder {
	b.numChan = n
	return b
}

// WithNumRank sets the number of ranks per channel.
func (b Builder) WithNumRank(n int) Builder {
	b.numRank = n
	return b
}

// WithNumBank sets the number of banks per rank.
func (b Builder) WithNumBank(n int) Builder {
	b.numBank = n
	return b
}

// WithNumRow sets the number of rows per bank.
func (b Builder) WithNumRow(n int) Builder {
	b.numRow = n
	return b
}

// WithNumCol sets the number of columns per row.
func (b Builder) WithNumCol(n int) Builder {
	b.numCol = n
	return b
}

// Build creates the Mapper for the configured topology and scheme.
func (b Builder) Build() Mapper {
	transactionSize := b.busWidth / 8 * b.burstLength

	return schemeMapper{
		scheme:          b.scheme,
		byteOffsetBits:  log2(transactionSize),
		colLoBits:       log2(b.burstLength),
		colHiBits:       log2(b.numCol) - log2(b.burstLength),
		bankBits:        log2(b.numBank),
		rankBits:        log2(b.numRank),
		rowBits:         log2(b.numRow),
		chanBits:        log2(b.numChan),
	}
}

package mem

// AddressConverter translates between the address space a memory
// controller's clients see and the address space the controller's internal
// row/column decoding operates on. It is optional: a controller with a nil
// converter treats external and internal addresses as identical.
type AddressConverter interface {
	ConvertExternalToInternal(external uint64) uint64
	ConvertInternalToExternal(internal uint64) uint64
}

// InterleavingConverter implements AddressConverter for a memory controller
// that is one of several units sharing an interleaved address range, for
// example one channel among many in a multi-channel memory system. Addresses
// are interleaved across the units at InterleavingSize granularity; this
// converter strips out the bits that select the unit and compacts the
// remaining bits into a dense internal address.
type InterleavingConverter struct {
	// InterleavingSize is the number of bytes mapped to one unit before
	// moving on to the next, in round-robin order.
	InterleavingSize uint64

	// TotalNumOfElements is the number of units sharing the interleaved
	// range.
	TotalNumOfElements int

	// CurrentElementIndex is the position of this unit among
	// TotalNumOfElements, counting from 0.
	CurrentElementIndex int

	// Offset is the external address at which the interleaved range
	// begins.
	Offset uint64
}

// ConvertExternalToInternal removes the interleaving stride from an address
// within this unit's interleaved range, yielding a dense internal address.
func (c InterleavingConverter) ConvertExternalToInternal(external uint64) uint64 {
	relative := external - c.Offset
	chunkIndex := relative / c.InterleavingSize
	offsetInChunk := relative % c.InterleavingSize

	return chunkIndex/uint64(c.TotalNumOfElements)*c.InterleavingSize + offsetInChunk
}

// ConvertInternalToExternal is the inverse of ConvertExternalToInternal,
// reinserting the interleaving stride for this unit's index.
func (c InterleavingConverter) ConvertInternalToExternal(internal uint64) uint64 {
	chunkIndex := internal / c.InterleavingSize
	offsetInChunk := internal % c.InterleavingSize

	return c.Offset + (chunkIndex*uint64(c.TotalNumOfElements)+uint64(c.CurrentElementIndex))*c.InterleavingSize + offsetInChunk
}

package org

import (
	"encoding/binary"
	"log"
)

// deadbeefSentinel is written as the first machine word of a freshly
// allocated read buffer for a (row, column) that was never written, so a
// host can distinguish real data from an unmodelled location.
const deadbeefSentinel uint32 = 0xDEADBEEF

// Bank is a single DRAM bank: a row-buffer state machine plus a sparse
// (row, column) -> payload store used only to echo back data previously
// written to the same location.
type Bank struct {
	State BankState

	accessUnitSize int
	numCols        int
	storage        map[bankCell][]byte
}

type bankCell struct {
	row int
	col int
}

// NewBank creates an empty Bank whose stored payloads are accessUnitSize
// bytes wide and whose columns are addressable up to numCols.
func NewBank(accessUnitSize, numCols int) *Bank {
	return &Bank{
		accessUnitSize: accessUnitSize,
		numCols:        numCols,
		storage:        make(map[bankCell][]byte),
	}
}

// Write stores data at (row, col), replacing whatever was there before.
// col must be within the bank's column count; an out-of-bounds column is a
// simulator bug, not a recoverable condition.
func (b *Bank) Write(row, col int, data []byte) {
	if col < 0 || col >= b.numCols {
		log.Panicf("org: column %d out of bounds (NUM_COLS=%d)", col, b.numCols)
	}

	b.storage[bankCell{row, col}] = data
}

// Read returns the payload stored at (row, col), or a freshly allocated
// sentinel-seeded buffer if the location was never written.
func (b *Bank) Read(row, col int) []byte {
	if data, ok := b.storage[bankCell{row, col}]; ok {
		return data
	}

	buf := make([]byte, b.accessUnitSize)
	if len(buf) >= 4 {
		binary.LittleEndian.PutUint32(buf, deadbeefSentinel)
	}

	return buf
}

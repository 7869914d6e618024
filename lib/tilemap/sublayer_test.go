// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"bytes"
	"testing"
)

func TestNewSubLayerClampsDefault(t *testing.T) {
	sublayer := NewSubLayer([]byte{1, 2, 3, 4, 5, 6})
	if sublayer.CellSize() != 4 {
		t.Errorf("cell size: got %d, want 4", sublayer.CellSize())
	}
	if !bytes.Equal(sublayer.Default(), []byte{1, 2, 3, 4}) {
		t.Errorf("default: got %x", sublayer.Default())
	}
}

func TestSubLayerResizeFillsWithDefault(t *testing.T) {
	sublayer := NewSubLayer([]byte{0xCA, 0xFE})
	sublayer.Resize(2, 2)
	if !bytes.Equal(sublayer.Data(), []byte{0xCA, 0xFE, 0xCA, 0xFE, 0xCA, 0xFE, 0xCA, 0xFE}) {
		t.Errorf("data: got %x", sublayer.Data())
	}
}

func TestSubLayerResizeShrinkIsLossy(t *testing.T) {
	sublayer := NewSubLayer([]byte{0})
	sublayer.Resize(3, 1)
	sublayer.SetCell(2, 0, []byte{9})
	sublayer.Resize(2, 1)
	sublayer.Resize(3, 1)
	if got := sublayer.Cell(2, 0); !bytes.Equal(got, []byte{0}) {
		t.Errorf("cell (2,0) after shrink+grow: got %x, want default 00", got)
	}
}

func TestSetDefaultSameSizeKeepsBuffer(t *testing.T) {
	sublayer := NewSubLayer([]byte{0x01})
	sublayer.Resize(2, 2)
	sublayer.SetCell(0, 0, []byte{0x55})
	before := sublayer.Data()

	sublayer.SetDefault([]byte{0x02})
	after := sublayer.Data()
	if &before[0] != &after[0] {
		t.Error("same-size SetDefault reallocated the buffer")
	}
	if got := sublayer.Cell(0, 0); !bytes.Equal(got, []byte{0x55}) {
		t.Errorf("cell (0,0): got %x, want 55", got)
	}
	if !bytes.Equal(sublayer.Default(), []byte{0x02}) {
		t.Errorf("default: got %x, want 02", sublayer.Default())
	}
}

func TestSetDefaultGrowZeroPadsCells(t *testing.T) {
	sublayer := NewSubLayer([]byte{0xAA})
	sublayer.Resize(2, 1)
	sublayer.SetCell(0, 0, []byte{0x11})
	sublayer.SetCell(1, 0, []byte{0x22})

	sublayer.SetDefault([]byte{1, 2, 3})
	if sublayer.CellSize() != 3 {
		t.Fatalf("cell size: got %d, want 3", sublayer.CellSize())
	}
	// Existing cell bytes are preserved and padded with zeros, not
	// with the new default.
	if !bytes.Equal(sublayer.Data(), []byte{0x11, 0, 0, 0x22, 0, 0}) {
		t.Errorf("data: got %x", sublayer.Data())
	}
}

func TestSetDefaultShrinkTruncatesCells(t *testing.T) {
	sublayer := NewSubLayer([]byte{1, 2, 3, 4})
	sublayer.Resize(2, 1)
	sublayer.SetCell(1, 0, []byte{9, 8, 7, 6})

	sublayer.SetDefault([]byte{0xFF})
	if !bytes.Equal(sublayer.Data(), []byte{1, 9}) {
		t.Errorf("data: got %x, want 0109", sublayer.Data())
	}
}

func TestSetDefaultToZeroClearsBuffer(t *testing.T) {
	sublayer := NewSubLayer([]byte{1})
	sublayer.Resize(2, 2)
	sublayer.SetDefault(nil)
	if sublayer.CellSize() != 0 {
		t.Errorf("cell size: got %d, want 0", sublayer.CellSize())
	}
	if len(sublayer.Data()) != 0 {
		t.Errorf("data not cleared: %x", sublayer.Data())
	}
}

func TestSetDefaultFromZeroFillsWithZeros(t *testing.T) {
	// Growing from cell size 0 fills with zero bytes, not with the
	// new default value. A quirk of the original implementation that
	// callers rely on.
	sublayer := NewSubLayer(nil)
	sublayer.Resize(2, 2)
	sublayer.SetDefault([]byte{0xAB, 0xCD})
	if !bytes.Equal(sublayer.Data(), make([]byte, 8)) {
		t.Errorf("data: got %x, want zeros", sublayer.Data())
	}
}

func TestSetDefaultOnEmptyGridSkipsMigration(t *testing.T) {
	sublayer := NewSubLayer([]byte{1})
	sublayer.SetDefault([]byte{1, 2, 3})
	if sublayer.CellSize() != 3 {
		t.Errorf("cell size: got %d, want 3", sublayer.CellSize())
	}
	if len(sublayer.Data()) != 0 {
		t.Errorf("empty sublayer grew data: %x", sublayer.Data())
	}
}

func TestCellBounds(t *testing.T) {
	sublayer := NewSubLayer([]byte{1, 2})
	sublayer.Resize(3, 2)
	if cell := sublayer.Cell(3, 0); cell != nil {
		t.Errorf("Cell(3,0) in a 3x2 sublayer: got %x, want nil", cell)
	}
	if cell := sublayer.Cell(0, 2); cell != nil {
		t.Errorf("Cell(0,2) in a 3x2 sublayer: got %x, want nil", cell)
	}
	if sublayer.SetCell(9, 9, []byte{0}) {
		t.Error("SetCell(9,9) reported success")
	}
}

func TestSetCellCopiesAtMostCellSize(t *testing.T) {
	sublayer := NewSubLayer([]byte{0, 0})
	sublayer.Resize(2, 1)
	sublayer.SetCell(0, 0, []byte{1, 2, 3, 4})
	if !bytes.Equal(sublayer.Data(), []byte{1, 2, 0, 0}) {
		t.Errorf("data: got %x, want 01020000", sublayer.Data())
	}
}

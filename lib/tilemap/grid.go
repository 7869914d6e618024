// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// filledGrid returns cellCount copies of defaultCell laid out
// back-to-back. The element type is generic so the same helper serves
// layer grids ([]Tile, one element per cell) and sublayer buffers
// ([]byte, cell-size elements per cell).
func filledGrid[T any](defaultCell []T, cellCount int) []T {
	grid := make([]T, 0, cellCount*len(defaultCell))
	for i := 0; i < cellCount; i++ {
		grid = append(grid, defaultCell...)
	}
	return grid
}

// resizeGrid rebuilds a non-empty row-major grid for new dimensions,
// filling new cells with defaultCell and dropping cells that fall
// outside the new bounds. Both the old and new dimensions must be
// non-zero; the no-op, clear, and construct cases are handled by the
// callers, which also own the surrounding bookkeeping (dimension
// fields, sublayer recursion).
//
// The rebuild is two-phase on purpose: height is adjusted first, a
// cheap truncate or append that keeps the old width as the row stride,
// and only then is the buffer re-chunked row by row when the width
// itself changed. Reflowing both axes in one pass would have to track
// two strides at once.
func resizeGrid[T any](grid []T, oldWidth, oldHeight, newWidth, newHeight uint32, defaultCell []T) []T {
	cellSize := len(defaultCell)
	if cellSize == 0 {
		return grid[:0]
	}

	// Phase 1: height, using the old width as the stride. The truncate
	// clamps to the buffer's real length: a decoded grid may hold fewer
	// cells than its dimensions claim, and shortening past the end must
	// be a no-op, not a panic.
	if oldHeight > newHeight {
		if target := int(oldWidth) * int(newHeight) * cellSize; target < len(grid) {
			grid = grid[:target]
		}
	} else if oldHeight < newHeight {
		addedCells := int(oldWidth) * int(newHeight-oldHeight)
		grid = append(grid, filledGrid(defaultCell, addedCells)...)
	}

	// Phase 2: width, re-chunking the height-adjusted buffer into rows
	// of the old width and rebuilding each row. The final row of an
	// under-filled buffer may be short; slice bounds clamp to what is
	// actually there.
	if oldWidth != newWidth {
		oldRowLength := int(oldWidth) * cellSize
		newRowLength := int(newWidth) * cellSize
		rebuilt := make([]T, 0, newRowLength*int(newHeight))
		for start := 0; start < len(grid); start += oldRowLength {
			row := grid[start:min(start+oldRowLength, len(grid))]
			if oldWidth < newWidth {
				rebuilt = append(rebuilt, row...)
				rebuilt = append(rebuilt, filledGrid(defaultCell, int(newWidth-oldWidth))...)
			} else {
				rebuilt = append(rebuilt, row[:min(newRowLength, len(row))]...)
			}
		}
		grid = rebuilt
	}

	return grid
}

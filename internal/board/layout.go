// Package board draws an engine snapshot into a core.Screen: the serpentine
// square layout, teleport markers, player tokens, status bar and win overlay.
package board

import "github.com/vovakirdan/tui-ladders/internal/engine"

// Square cell dimensions in terminal characters.
const (
	CellW = 6
	CellH = 2
)

// Surface dimensions.
const (
	GridW      = engine.GridSize * CellW
	GridH      = engine.GridSize * CellH
	StatusH    = 3 // two message lines, last roll
	HelpH      = 1 // key hints rendered by the platform below the status bar
	SurfaceW   = GridW
	SurfaceH   = GridH + StatusH + HelpH
	statusTopY = GridH

	statusMessageLines = 2
)

// Coord returns the grid column and row of square n.
// Row 0 is the bottom row (squares 1-10). Even rows run left to right,
// odd rows right to left. The start square shares square 1's cell.
func Coord(n int) (col, row int) {
	if n <= engine.StartSquare {
		return 0, 0
	}
	row = (n - 1) / engine.GridSize
	col = (n - 1) % engine.GridSize
	if row%2 == 1 {
		col = engine.GridSize - 1 - col
	}
	return col, row
}

// SquareAt returns the square number shown at grid column col and row row.
func SquareAt(col, row int) int {
	if row%2 == 1 {
		col = engine.GridSize - 1 - col
	}
	return row*engine.GridSize + col + 1
}

// Origin returns the screen position of the top-left character of square n.
func Origin(n int) (x, y int) {
	col, row := Coord(n)
	return col * CellW, (engine.GridSize - 1 - row) * CellH
}

package board

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// Marker is a player's token.
type Marker struct {
	Glyph rune
	Color core.Color
}

// DefaultMarkers returns red and blue tokens.
func DefaultMarkers() [engine.PlayerCount]Marker {
	return [engine.PlayerCount]Marker{
		{Glyph: '●', Color: core.ColorRed},
		{Glyph: '●', Color: core.ColorBlue},
	}
}

// Frame is everything needed to draw one picture of the game.
type Frame struct {
	Positions [engine.PlayerCount]int
	Teleports engine.TeleportMap
	Markers   [engine.PlayerCount]Marker
	Message   string
	LastRoll  int
	Winner    int // -1 while in progress
	Names     Names
}

// FrameFromSnapshot builds the frame for a settled snapshot.
func FrameFromSnapshot(snap engine.Snapshot, teleports engine.TeleportMap, names Names, markers [engine.PlayerCount]Marker) Frame {
	winner := -1
	if snap.Over {
		winner = snap.LastOutcome.Player
	}
	return Frame{
		Positions: snap.Positions(),
		Teleports: teleports,
		Markers:   markers,
		Message:   Message(snap.LastOutcome, snap.CurrentPlayer, names),
		LastRoll:  snap.LastRoll,
		Winner:    winner,
		Names:     names,
	}
}

// Draw renders the frame into dst, which should be at least
// SurfaceW x (GridH + StatusH).
func Draw(dst *core.Screen, f Frame) {
	dst.Clear()
	drawGrid(dst, f.Teleports)
	drawPlayers(dst, f)
	drawStatus(dst, f)
	if f.Winner >= 0 {
		drawWinOverlay(dst, f)
	}
}

// drawGrid draws square numbers and teleport markers.
// Checkered squares use a dimmer number color.
func drawGrid(dst *core.Screen, teleports engine.TeleportMap) {
	for row := range engine.GridSize {
		for col := range engine.GridSize {
			n := SquareAt(col, row)
			x, y := Origin(n)

			numColor := core.ColorWhite
			if (row+col)%2 == 1 {
				numColor = core.ColorGray
			}
			dst.DrawTextColor(x, y, strconv.Itoa(n), numColor)

			dest, ok := teleports[n]
			if !ok {
				continue
			}
			switch engine.Classify(n, dest) {
			case engine.TeleportLadder:
				dst.DrawTextColor(x+2, y+1, "↑"+strconv.Itoa(dest), core.ColorGreen)
			case engine.TeleportSnake:
				dst.DrawTextColor(x+2, y+1, "↓"+strconv.Itoa(dest), core.ColorRed)
			}
		}
	}
}

// drawPlayers places each token in its own slot of the square so that two
// players on one square stay visible.
func drawPlayers(dst *core.Screen, f Frame) {
	for i, pos := range f.Positions {
		x, y := Origin(pos)
		m := f.Markers[i]
		dst.SetColor(x+i, y+1, m.Glyph, m.Color)
	}
}

func drawStatus(dst *core.Screen, f Frame) {
	lines := StatusLines(f.Message, dst.Width())
	for i := 0; i < len(lines) && i < statusMessageLines; i++ {
		dst.DrawTextCentered(statusTopY+i, lines[i], core.ColorWhite)
	}
	dst.DrawTextCentered(statusTopY+statusMessageLines, RollText(f.LastRoll), core.ColorYellow)
}

func drawWinOverlay(dst *core.Screen, f Frame) {
	title := fmt.Sprintf("%s Wins!", f.Names[f.Winner])
	hint := "Press SPACE to Play Again"

	w := max(len([]rune(title)), len(hint)) + 4
	h := 4
	box := core.NewRect((GridW-w)/2, (GridH-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	cx, _ := box.Center()
	dst.DrawTextColor(cx-len([]rune(title))/2, box.Y+1, title, f.Markers[f.Winner].Color)
	dst.DrawTextColor(cx-len(hint)/2, box.Y+2, hint, core.ColorWhite)
}

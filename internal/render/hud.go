package render

import (
	"fmt"
	"strings"

	"github.com/froggyhop/froggyhop/internal/game"
)

// Fixed HUD rows
const (
	HUDRow   = 0
	LogLines = 3
)

// Controls is the key help shown on the title screen and in play.
const Controls = "Arrows/WASD: hop  ESC: quit"

// RenderHUD draws the screen chrome for the current session state: the score
// bar and pond log while playing, the title screen before a game, the final
// score after one.
func RenderHUD(buf *CellBuffer, snap *game.Snapshot, log *game.MessageLog) {
	switch {
	case snap.Playing:
		renderPlayHUD(buf, snap, log)
	case snap.GameOver:
		renderGameOver(buf, snap)
	default:
		renderTitle(buf)
	}
}

func renderPlayHUD(buf *CellBuffer, snap *game.Snapshot, log *game.MessageLog) {
	buf.Fill(0, HUDRow, buf.Cols, 1, ' ', ColorText, ColorNight)
	buf.WriteString(1, HUDRow, fmt.Sprintf("Score %d", snap.Score), ColorTitle, ColorNight)
	buf.WriteCentered(HUDRow, snap.Pond, ColorTextDim, ColorNight)

	lives := LivesString(snap.Lives)
	buf.WriteString(buf.Cols-len([]rune(lives))-1, HUDRow, lives, ColorDanger, ColorNight)

	if log != nil {
		msgs := log.Recent(LogLines)
		top := buf.Rows - 1 - len(msgs)
		for i, m := range msgs {
			buf.WriteString(1, top+i, m.Text, msgColor(m.Priority), ColorNight)
		}
	}
	buf.WriteString(1, buf.Rows-1, Controls, ColorTextDim, ColorNight)
}

// LivesString shows remaining lives as hearts and lost ones as dashes.
func LivesString(lives int) string {
	if lives < 0 {
		lives = 0
	}
	if lives > game.StartingLives {
		lives = game.StartingLives
	}
	return strings.Repeat("♥", lives) + strings.Repeat("-", game.StartingLives-lives)
}

func renderTitle(buf *CellBuffer) {
	lines := []struct {
		text string
		fg   uint8
	}{
		{"@", ColorFrog},
		{"Froggy Hop!", ColorTitle},
		{"Hop across the lily pads", ColorText},
		{"", ColorText},
		{"Arrows or WASD to hop", ColorTextDim},
		{"Touch buttons on mobile", ColorTextDim},
		{"", ColorText},
		{"Press SPACE or tap to start", ColorWarning},
	}
	drawPanel(buf, len(lines))
	top := (buf.Rows - len(lines)) / 2
	for i, l := range lines {
		buf.WriteCentered(top+i, l.text, l.fg, ColorNight)
	}
}

func renderGameOver(buf *CellBuffer, snap *game.Snapshot) {
	lines := []struct {
		text string
		fg   uint8
	}{
		{"Game Over", ColorWarning},
		{"", ColorText},
		{fmt.Sprintf("Final Score: %d", snap.Score), ColorTitle},
		{"", ColorText},
		{"Press R or tap to try again", ColorText},
	}
	drawPanel(buf, len(lines))
	top := (buf.Rows - len(lines)) / 2
	for i, l := range lines {
		buf.WriteCentered(top+i, l.text, l.fg, ColorNight)
	}
}

// drawPanel clears a centered band behind n lines of text.
func drawPanel(buf *CellBuffer, n int) {
	const w = 32
	h := n + 2
	buf.Fill((buf.Cols-w)/2, (buf.Rows-n)/2-1, w, h, ' ', ColorText, ColorNight)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgScore:
		return ColorTitle
	case game.MsgWarning:
		return ColorWarning
	case game.MsgCritical:
		return ColorDanger
	default:
		return ColorText
	}
}

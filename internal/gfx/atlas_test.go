package gfx

import (
	"testing"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/froggyhop/froggyhop/internal/world"
)

// drawnRunes collects every glyph the shared renderer emits across the
// title, play and game-over screens.
func drawnRunes() map[rune]bool {
	seen := map[rune]bool{}
	snap := game.Snapshot{
		Frog: game.FrogView{Position: world.Vec3{Y: game.RestHeight + game.ArcHeight}},
		Pads: []game.PadView{
			{LilyPad: world.LilyPad{ID: 0, Size: 1.2, Safe: true}, Visited: true},
			{LilyPad: world.LilyPad{ID: 1, Position: world.Vec3{X: 5}, Size: 1.2}},
			{LilyPad: world.LilyPad{ID: 2, Position: world.Vec3{X: -5}, Size: 1.2, Sinking: true, Depth: 1}},
		},
		Pond:  "pond",
		Lives: 2,
	}
	log := game.NewMessageLog(8, 40)
	log.Add("New pad! +10", game.MsgScore)

	for _, state := range []struct{ playing, over bool }{{false, false}, {true, false}, {false, true}} {
		snap.Playing, snap.GameOver = state.playing, state.over
		buf := render.NewCellBuffer(60, 30)
		render.RenderPond(buf, &snap, render.FitView(60, 26, 1, 2))
		render.RenderHUD(buf, &snap, log)
		for _, c := range buf.Cells {
			seen[c.Glyph] = true
		}
	}
	return seen
}

func TestAtlasCoversDrawnGlyphs(t *testing.T) {
	have := map[rune]bool{}
	for _, r := range atlasRunes() {
		have[r] = true
	}
	drawn := drawnRunes()
	for r := range drawn {
		if !have[r] {
			t.Errorf("glyph %q drawn but missing from the atlas", r)
		}
	}
	for _, r := range extraGlyphs {
		if !drawn[r] {
			t.Errorf("hand-drawn glyph %q is never rendered", r)
		}
	}
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/froggyhop/froggyhop/assets"
	"github.com/froggyhop/froggyhop/internal/audio"
	"github.com/froggyhop/froggyhop/internal/config"
	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

const maxFrame = 100 * time.Millisecond

type term struct {
	screen tcell.Screen
	sim    *game.Sim
	buffer *render.CellBuffer
	view   render.View
	button bool // mouse button held
}

func main() {
	cfg, err := config.Resolve("froggyhop-term", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source, err := assets.Source(cfg.Pond, seed)
	if err != nil {
		log.Fatalf("pond: %v", err)
	}

	sim := game.NewSim(source)
	if !cfg.Muted {
		spk, err := audio.NewSpeaker()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer spk.Close()
			sim.OnEvent = audio.Listener(spk)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}
	defer s.Fini()
	s.Clear()
	s.HideCursor()
	s.EnableMouse()

	t := &term{screen: s, sim: sim, buffer: render.NewCellBuffer(1, 1)}
	t.resize()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.resize()
				s.Sync()
			case *tcell.EventKey:
				if handleQuit(e) {
					return
				}
				if c, ok := keyCommand(e); ok {
					sim.Dispatch(c)
				}
			case *tcell.EventMouse:
				down := e.Buttons()&tcell.Button1 != 0
				if down && !t.button {
					t.click()
				}
				t.button = down
			}
		case now := <-tick.C:
			dt := now.Sub(last)
			last = now
			if dt > maxFrame {
				dt = maxFrame
			}
			sim.Update(dt)
			t.render()
		}
	}
}

func (t *term) resize() {
	cols, rows := t.screen.Size()
	t.buffer.Resize(cols, rows)
	// leave the HUD row on top and the log plus key help below
	t.view = render.FitView(cols, rows-render.LogLines-2, render.HUDRow+1, cellAspect)
}

// click starts or leaves a game; there are no on-screen hop buttons here.
func (t *term) click() {
	s := &t.sim.Session
	switch {
	case s.GameOver:
		t.sim.Dispatch(game.Command{Kind: game.CmdReset})
	case !s.Playing:
		t.sim.Dispatch(game.Command{Kind: game.CmdBegin})
	}
}

func (t *term) render() {
	snap := t.sim.Snapshot()
	t.buffer.Clear()
	render.RenderPond(t.buffer, &snap, t.view)
	render.RenderHUD(t.buffer, &snap, t.sim.Log)

	b := t.buffer
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			c := b.Cells[y*b.Cols+x]
			st := tcell.StyleDefault.Foreground(paletteColor(c.FG)).Background(paletteColor(c.BG))
			if c.FG == render.ColorFrog {
				st = st.Bold(true)
			}
			t.screen.SetContent(x, y, c.Glyph, nil, st)
		}
	}
	t.screen.Show()
}

func paletteColor(i uint8) tcell.Color {
	if i == render.ColorNone {
		return tcell.ColorReset
	}
	c := render.Palette[i]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func keyCommand(e *tcell.EventKey) (game.Command, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return game.HopCommand(game.DirUp), true
	case tcell.KeyDown:
		return game.HopCommand(game.DirDown), true
	case tcell.KeyLeft:
		return game.HopCommand(game.DirLeft), true
	case tcell.KeyRight:
		return game.HopCommand(game.DirRight), true
	case tcell.KeyRune:
	default:
		return game.Command{}, false
	}
	switch e.Rune() {
	case 'w', 'W':
		return game.HopCommand(game.DirUp), true
	case 's', 'S':
		return game.HopCommand(game.DirDown), true
	case 'a', 'A':
		return game.HopCommand(game.DirLeft), true
	case 'd', 'D':
		return game.HopCommand(game.DirRight), true
	case ' ':
		return game.Command{Kind: game.CmdBegin}, true
	case 'r', 'R':
		return game.Command{Kind: game.CmdReset}, true
	}
	return game.Command{}, false
}

func handleQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	r := e.Rune()
	return e.Key() == tcell.KeyRune && (r == 'q' || r == 'Q')
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/froggyhop/froggyhop/assets"
	"github.com/froggyhop/froggyhop/internal/audio"
	"github.com/froggyhop/froggyhop/internal/config"
	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/gfx"
	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 720
	title        = "Froggy Hop"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 60
	gridRows   = screenHeight / cellHeight // 45

	buttonSize   = 64
	buttonMargin = 16
)

var hopKeys = []struct {
	keys []ebiten.Key
	dir  game.Direction
}{
	{[]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, game.DirUp},
	{[]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, game.DirDown},
	{[]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, game.DirLeft},
	{[]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, game.DirRight},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	renderer *gfx.GridRenderer
	painter  gfx.PondPainter
	buttons  []render.Button
	buffer   *render.CellBuffer
	sim      *game.Sim
	snap     game.Snapshot
	frame    time.Duration
	touches  []ebiten.TouchID
}

func NewGame(sim *game.Sim, tps int) *Game {
	g := &Game{
		renderer: gfx.NewGridRenderer(gfx.NewFontAtlas(), cellWidth, cellHeight),
		painter:  gfx.FitPainter(screenWidth, screenHeight, cellHeight),
		buttons:  render.ButtonLayout(screenWidth, screenHeight, buttonSize, buttonMargin),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		sim:      sim,
		frame:    time.Second / time.Duration(tps),
	}
	g.drawScreen()
	return g
}

func (g *Game) drawScreen() {
	g.snap = g.sim.Snapshot()
	g.buffer.Clear()
	render.RenderHUD(g.buffer, &g.snap, g.sim.Log)

	fps := fmt.Sprintf("FPS %.0f", ebiten.ActualFPS())
	g.buffer.WriteString(gridCols-len(fps)-1, 1, fps, render.ColorTextDim, render.ColorNone)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, hk := range hopKeys {
		for _, k := range hk.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.sim.Dispatch(game.HopCommand(hk.dir))
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Dispatch(game.Command{Kind: game.CmdBegin})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Dispatch(game.Command{Kind: game.CmdReset})
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		g.tap(ebiten.TouchPosition(id))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.tap(ebiten.CursorPosition())
	}

	g.sim.Update(g.frame)
	g.drawScreen()
	return nil
}

// tap handles a touch or click: hop buttons while playing, otherwise the same
// as SPACE on the title screen and R on the game-over screen.
func (g *Game) tap(x, y int) {
	s := &g.sim.Session
	switch {
	case s.Playing:
		if dir, ok := render.HitTest(g.buttons, x, y); ok {
			g.sim.Dispatch(game.HopCommand(dir))
		}
	case s.GameOver:
		g.sim.Dispatch(game.Command{Kind: game.CmdReset})
	default:
		g.sim.Dispatch(game.Command{Kind: game.CmdBegin})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, &g.snap)
	if g.snap.Playing {
		gfx.DrawButtons(screen, g.buttons)
	}
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// clipPlayer plays pre-rendered effect clips through Ebitengine's audio.
type clipPlayer struct {
	ctx   *eaudio.Context
	clips map[audio.Effect][]byte
}

func newClipPlayer() *clipPlayer {
	p := &clipPlayer{
		ctx:   eaudio.NewContext(int(audio.SampleRate)),
		clips: make(map[audio.Effect][]byte, len(audio.Effects)),
	}
	for _, e := range audio.Effects {
		p.clips[e] = audio.PCM(e)
	}
	return p
}

func (p *clipPlayer) Play(e audio.Effect) {
	if clip, ok := p.clips[e]; ok {
		p.ctx.NewPlayerFromBytes(clip).Play()
	}
}

func main() {
	cfg, err := config.Resolve("froggyhop", os.Args[1:])
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
	log.Printf("froggyhop: seed %d, pond %q", seed, cfg.Pond)

	sim := game.NewSim(source)
	if !cfg.Muted {
		sim.OnEvent = audio.Listener(newClipPlayer())
	}

	ebiten.SetWindowSize(int(screenWidth*cfg.Scale), int(screenHeight*cfg.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(sim, cfg.TPS)); err != nil {
		log.Fatal(err)
	}
}

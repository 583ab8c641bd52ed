package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/froggyhop/froggyhop/internal/world"
)

const frame = 10 * time.Millisecond

func newTestSim(pads ...world.LilyPad) *Sim {
	return NewSim(FixedBoard(boardWith(pads...)))
}

// run advances the sim by total in fixed frames.
func run(s *Sim, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		s.Update(frame)
	}
}

func spawn() world.Vec3 { return world.Vec3{Y: RestHeight} }

func TestHopIgnoredBeforeStart(t *testing.T) {
	s := newTestSim(pad(1, 0, -2))
	if s.Hop(DirUp) {
		t.Fatal("Hop accepted before the game started")
	}
	if s.IsHopping() || s.FrogPos() != spawn() {
		t.Fatalf("frog moved: hopping=%v pos=%+v", s.IsHopping(), s.FrogPos())
	}
}

func TestHopOntoSafePad(t *testing.T) {
	s := newTestSim(pad(1, 0, -2))
	if s.Session.Score != 0 || s.Session.Lives != 3 || s.Session.Playing {
		t.Fatalf("new sim session = %+v", s.Session)
	}
	s.Start()

	if !s.Hop(DirUp) {
		t.Fatal("Hop rejected")
	}
	if !s.IsHopping() {
		t.Fatal("not hopping after Hop")
	}
	if s.Hop(DirDown) {
		t.Fatal("second Hop accepted mid-flight")
	}

	run(s, 500*time.Millisecond)
	if s.IsHopping() {
		t.Fatal("still hopping after 500ms")
	}
	want := world.Vec3{Y: RestHeight, Z: -2}
	if got := s.FrogPos(); got != want {
		t.Fatalf("frog at %+v, want %+v", got, want)
	}
	if s.Session.Score != PointsPerPad || s.Session.Lives != StartingLives {
		t.Fatalf("session = %+v, want score %d lives %d", s.Session, PointsPerPad, StartingLives)
	}
	if !s.Visited(1) {
		t.Fatal("pad 1 not marked visited")
	}
}

func TestRevisitScoresNothing(t *testing.T) {
	s := newTestSim(pad(1, 0, -2))
	s.Start()

	s.Hop(DirUp)
	run(s, 500*time.Millisecond)
	s.Hop(DirDown)
	run(s, 500*time.Millisecond)
	if got := s.FrogPos(); got != spawn() {
		t.Fatalf("frog at %+v, want spawn", got)
	}
	if s.Session.Score != PointsPerPad {
		t.Fatalf("score after returning to spawn = %d, want %d", s.Session.Score, PointsPerPad)
	}
	s.Hop(DirUp)
	run(s, 500*time.Millisecond)
	if s.Session.Score != PointsPerPad {
		t.Fatalf("score after revisiting = %d, want %d", s.Session.Score, PointsPerPad)
	}
}

func TestHopMidFlightFollowsArc(t *testing.T) {
	s := newTestSim(pad(1, 0, -2))
	s.Start()
	s.Hop(DirUp)

	s.Update(time.Second / 6) // progress 0.5
	pos := s.FrogPos()
	if math.Abs(pos.Y-(RestHeight+ArcHeight)) > 1e-6 {
		t.Errorf("mid-hop y = %v, want %v", pos.Y, RestHeight+ArcHeight)
	}
	if math.Abs(pos.Z+1) > 1e-6 {
		t.Errorf("mid-hop z = %v, want -1", pos.Z)
	}
}

func TestHopIntoWater(t *testing.T) {
	s := newTestSim()
	var events []EventKind
	s.OnEvent = func(e Event) { events = append(events, e.Kind) }
	s.Start()

	if !s.Hop(DirLeft) {
		t.Fatal("Hop into water rejected")
	}
	run(s, 400*time.Millisecond)
	if s.IsHopping() {
		t.Fatal("still hopping after the animation")
	}
	if got, want := s.FrogPos(), (world.Vec3{X: -WaterHopLength, Y: WaterHeight}); got != want {
		t.Fatalf("frog at %+v, want %+v in the water", got, want)
	}
	if s.Session.Lives != StartingLives {
		t.Fatalf("lives = %d before the fall delay", s.Session.Lives)
	}

	run(s, 190*time.Millisecond)
	if s.Session.Lives != StartingLives {
		t.Fatalf("lives = %d at 590ms", s.Session.Lives)
	}
	run(s, 10*time.Millisecond)
	if s.Session.Lives != StartingLives-1 {
		t.Fatalf("lives = %d after 600ms, want %d", s.Session.Lives, StartingLives-1)
	}
	if s.FrogPos() != spawn() || s.IsHopping() {
		t.Fatalf("frog at %+v hopping=%v, want idle at spawn", s.FrogPos(), s.IsHopping())
	}
	if s.Session.Score != 0 {
		t.Fatalf("score = %d, want 0", s.Session.Score)
	}

	want := []EventKind{EventStart, EventHop, EventSplash, EventLifeLost}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestUnsafePadSinks(t *testing.T) {
	unsafe := pad(1, 0, -2)
	unsafe.Safe = false
	s := newTestSim(unsafe)
	s.Start()

	s.Hop(DirUp)
	if s.Session.Score != PointsPerPad {
		t.Fatalf("score = %d right after hopping, want %d", s.Session.Score, PointsPerPad)
	}

	run(s, 290*time.Millisecond)
	if s.Board.Pad(1).Sinking {
		t.Fatal("pad sinking before 300ms")
	}
	run(s, 10*time.Millisecond)
	if !s.Board.Pad(1).Sinking {
		t.Fatal("pad not sinking at 300ms")
	}

	run(s, 490*time.Millisecond)
	if s.Session.Lives != StartingLives {
		t.Fatalf("lives = %d at 790ms", s.Session.Lives)
	}
	if got := (world.Vec3{Y: RestHeight, Z: -2}); s.FrogPos() != got {
		t.Fatalf("frog at %+v, want on the sinking pad %+v", s.FrogPos(), got)
	}
	run(s, 10*time.Millisecond)
	if s.Session.Lives != StartingLives-1 {
		t.Fatalf("lives = %d at 800ms, want %d", s.Session.Lives, StartingLives-1)
	}
	if s.FrogPos() != spawn() || s.IsHopping() {
		t.Fatalf("frog at %+v hopping=%v, want idle at spawn", s.FrogPos(), s.IsHopping())
	}
	if s.Session.Score != PointsPerPad {
		t.Fatalf("score = %d, want %d", s.Session.Score, PointsPerPad)
	}
}

func TestSunkPadLeavesSnapshot(t *testing.T) {
	unsafe := pad(1, 0, -2)
	unsafe.Safe = false
	s := newTestSim(unsafe)
	s.Start()
	s.Hop(DirUp)

	snap := s.Snapshot()
	if len(snap.Pads) != 2 || !snap.Pads[1].Visited {
		t.Fatalf("snapshot pads = %+v", snap.Pads)
	}
	run(s, 2*time.Second)
	snap = s.Snapshot()
	if len(snap.Pads) != 1 || snap.Pads[0].ID != world.SpawnPadID {
		t.Fatalf("snapshot pads after sinking = %+v, want spawn only", snap.Pads)
	}
}

func TestStartCancelsPendingTimers(t *testing.T) {
	s := newTestSim()
	s.Start()
	s.Hop(DirUp)
	run(s, 300*time.Millisecond)

	s.Start()
	run(s, time.Second)
	if s.Session.Lives != StartingLives {
		t.Fatalf("lives = %d, stale fall timer fired after restart", s.Session.Lives)
	}
}

func TestGameOverAndReset(t *testing.T) {
	s := newTestSim()
	var gameOver int
	s.OnEvent = func(e Event) {
		if e.Kind == EventGameOver {
			gameOver++
		}
	}
	s.Start()

	for i := 0; i < StartingLives; i++ {
		if !s.Hop(DirRight) {
			t.Fatalf("hop %d rejected", i)
		}
		run(s, time.Second)
	}
	if !s.Session.GameOver || s.Session.Playing || s.Session.Lives != 0 {
		t.Fatalf("session = %+v, want game over", s.Session)
	}
	if gameOver != 1 {
		t.Fatalf("game over events = %d, want 1", gameOver)
	}
	if s.Hop(DirUp) {
		t.Fatal("Hop accepted after game over")
	}
	if s.Dispatch(Command{Kind: CmdBegin}) {
		t.Fatal("begin accepted on the game-over screen")
	}
	if !s.Dispatch(Command{Kind: CmdReset}) {
		t.Fatal("reset rejected on the game-over screen")
	}
	if s.Session != NewSession() {
		t.Fatalf("session after reset = %+v", s.Session)
	}
	if s.Dispatch(Command{Kind: CmdReset}) {
		t.Fatal("reset accepted outside game over")
	}
	if !s.Dispatch(Command{Kind: CmdBegin}) || !s.Session.Playing {
		t.Fatal("begin rejected after reset")
	}
	if !s.Dispatch(HopCommand(DirUp)) {
		t.Fatal("hop command rejected in play")
	}
}

func TestStartRegeneratesBoard(t *testing.T) {
	s := NewSim(RandomBoards(world.NewRand(9)))
	first := s.Board
	s.Start()
	if s.Board == first {
		t.Fatal("Start reused the previous board")
	}
	if err := s.Board.Validate(); err != nil {
		t.Fatalf("generated board invalid: %v", err)
	}
	if !s.Visited(world.SpawnPadID) {
		t.Fatal("spawn pad not visited at start")
	}
}

func TestGameOverDropsPendingOutcomes(t *testing.T) {
	unsafe := pad(1, 0, -2)
	unsafe.Safe = false
	s := newTestSim(unsafe)

	var lifeLost, gameOver int
	s.OnEvent = func(e Event) {
		switch e.Kind {
		case EventLifeLost:
			lifeLost++
		case EventGameOver:
			gameOver++
		}
	}
	s.Start()
	s.Session.Lives = 1

	// sink timer runs out at 800ms, the water fall at 1000ms
	if !s.Hop(DirUp) {
		t.Fatal("hop onto unsafe pad rejected")
	}
	run(s, 400*time.Millisecond)
	if !s.Hop(DirLeft) {
		t.Fatal("hop into water rejected")
	}
	run(s, 2*time.Second)

	if lifeLost != 1 || gameOver != 1 {
		t.Fatalf("life lost = %d, game over = %d, want 1 and 1", lifeLost, gameOver)
	}
	if !s.Session.GameOver || s.Session.Lives != 0 {
		t.Fatalf("session = %+v, want game over with no lives", s.Session)
	}
	if n := s.Sched.Pending(); n != 0 {
		t.Fatalf("pending tasks = %d, want 0", n)
	}
	overLines := 0
	for _, m := range s.Log.Messages {
		if strings.HasPrefix(m.Text, "Game over") {
			overLines++
		}
	}
	if overLines != 1 {
		t.Fatalf("game over log lines = %d, want 1", overLines)
	}
}

package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/froggyhop/froggyhop/internal/world"
	"github.com/mlange-42/ark/ecs"
)

// BoardSource produces the board for each new game.
type BoardSource func() *world.Board

// RandomBoards generates a fresh random pond for every game.
func RandomBoards(rng *rand.Rand) BoardSource {
	return func() *world.Board { return world.GenerateBoard(rng) }
}

// FixedBoard replays the same layout every game.
func FixedBoard(b *world.Board) BoardSource {
	return func() *world.Board { return b.Clone() }
}

// Sim is the pond simulation. It owns the board, the session and the frog,
// and is the only thing that mutates them. Front ends read Snapshot and send
// input through Dispatch or Hop; everything runs on one goroutine.
type Sim struct {
	ECS     *ecs.World
	Board   *world.Board
	Session Session
	Log     *MessageLog
	Sched   *Scheduler

	// OnEvent, if set, is called synchronously for every Event.
	OnEvent func(Event)

	source  BoardSource
	visited map[int]struct{}

	frog    ecs.Entity
	bodyMap *ecs.Map[FrogBody]
	hopMap  *ecs.Map[Hop]
}

// NewSim creates a simulation in the neutral pre-game state. The first board
// is generated immediately so there is a pond to show behind the title.
func NewSim(source BoardSource) *Sim {
	w := ecs.NewWorld(16)

	bodyMap := ecs.NewMap[FrogBody](w)
	hopMap := ecs.NewMap[Hop](w)

	frog := ecs.NewMap2[FrogBody, Hop](w).NewEntity(
		&FrogBody{Current: spawnPosition(), Target: spawnPosition(), Start: spawnPosition()},
		&Hop{PadID: -1},
	)

	return &Sim{
		ECS:     w,
		Board:   source(),
		Session: NewSession(),
		Log:     NewMessageLog(32, 40),
		Sched:   NewScheduler(),
		source:  source,
		visited: map[int]struct{}{world.SpawnPadID: {}},
		frog:    frog,
		bodyMap: bodyMap,
		hopMap:  hopMap,
	}
}

// FrogPos returns the frog's current position.
func (s *Sim) FrogPos() world.Vec3 {
	return s.bodyMap.Get(s.frog).Current
}

// IsHopping reports whether a hop animation is in flight.
func (s *Sim) IsHopping() bool {
	return s.hopMap.Get(s.frog).Active
}

// Visited reports whether the frog has landed on pad id this game.
func (s *Sim) Visited(id int) bool {
	_, ok := s.visited[id]
	return ok
}

// Begin starts a game if the session is on the title screen.
func (s *Sim) Begin() bool {
	if !s.Session.CanBegin() {
		return false
	}
	s.Start()
	return true
}

// Start begins a new game on a fresh board. Outcome timers from a previous
// game are dropped.
func (s *Sim) Start() {
	s.Sched.Clear()
	s.Session.Start()
	s.Board = s.source()
	s.visited = map[int]struct{}{world.SpawnPadID: {}}
	s.respawn()
	s.Log.Clear()
	s.Log.Add(fmt.Sprintf("Welcome to %s. Hop to new pads!", s.Board.Name), MsgInfo)
	s.emit(Event{Kind: EventStart, PadID: -1})
}

// Reset returns to the title screen. Pending outcome timers are dropped.
func (s *Sim) Reset() {
	s.Sched.Clear()
	s.Session.Reset()
	s.respawn()
}

// Hop starts a hop in dir. It returns false, changing nothing, when the
// session is not in play or a hop is already in flight.
func (s *Sim) Hop(dir Direction) bool {
	hop := s.hopMap.Get(s.frog)
	if !s.Session.Playing || hop.Active {
		return false
	}
	body := s.bodyMap.Get(s.frog)

	pad := FindTarget(s.Board, body.Current, dir)
	body.Start = body.Current
	hop.Progress = 0
	hop.Active = true

	if pad == nil {
		dx, dz := dir.Vector()
		body.Target = world.Vec3{
			X: body.Current.X + dx*WaterHopLength,
			Y: WaterHeight,
			Z: body.Current.Z + dz*WaterHopLength,
		}
		hop.PadID = -1
		s.emit(Event{Kind: EventHop, PadID: -1})
		s.Sched.After(WaterFallDelay, s.fallIn)
		return true
	}

	body.Target = pad.Position.AtHeight(RestHeight)
	hop.PadID = pad.ID
	s.emit(Event{Kind: EventHop, PadID: pad.ID})

	if _, seen := s.visited[pad.ID]; !seen {
		s.visited[pad.ID] = struct{}{}
		s.Session.AddScore(PointsPerPad)
		s.Log.Add(fmt.Sprintf("New pad! +%d", PointsPerPad), MsgScore)
		s.emit(Event{Kind: EventNewPad, PadID: pad.ID, Points: PointsPerPad})
	}

	if !pad.Safe {
		id := pad.ID
		s.Sched.After(SinkDelay, func() { s.sink(id) })
	}
	return true
}

// Update advances the simulation by one frame of dt: the hop animation, the
// sinking pads, then any outcome timers that fall due.
func (s *Sim) Update(dt time.Duration) {
	secs := dt.Seconds()

	hop := s.hopMap.Get(s.frog)
	if hop.Active {
		body := s.bodyMap.Get(s.frog)
		hop.Progress += secs * HopSpeed
		if hop.Progress >= 1 {
			hop.Progress = 1
			hop.Active = false
			body.Current = body.Target
			s.landed(hop.PadID)
		} else {
			body.Current = HopPosition(body.Start, body.Target, hop.Progress)
		}
	}

	s.Board.Advance(secs)
	s.Sched.Advance(dt)
}

func (s *Sim) landed(padID int) {
	if padID < 0 {
		s.Log.Add("Splash!", MsgWarning)
		s.emit(Event{Kind: EventSplash, PadID: -1})
		return
	}
	s.emit(Event{Kind: EventLand, PadID: padID})
}

// sink runs SinkDelay after landing on an unsafe pad.
func (s *Sim) sink(padID int) {
	if s.Board.MarkSinking(padID) {
		s.Log.Add("The pad is sinking!", MsgWarning)
		s.emit(Event{Kind: EventSinking, PadID: padID})
	}
	s.Sched.After(SinkLifeDelay, func() {
		s.loseLife("Glub glub... the pad went under.")
	})
}

// fallIn runs WaterFallDelay after hopping into open water.
func (s *Sim) fallIn() {
	s.loseLife("Fell in the pond!")
}

func (s *Sim) loseLife(reason string) {
	if !s.Session.Playing {
		return
	}
	s.Session.LoseLife()
	s.respawn()
	s.Log.Add(reason, MsgCritical)
	s.emit(Event{Kind: EventLifeLost, PadID: -1})
	if s.Session.GameOver {
		// outcomes still pending belong to the game that just ended
		s.Sched.Clear()
		s.Log.Add(fmt.Sprintf("Game over. Final score: %d", s.Session.Score), MsgCritical)
		s.emit(Event{Kind: EventGameOver, PadID: -1})
	}
}

// respawn puts the frog back on the spawn pad with no hop in flight.
func (s *Sim) respawn() {
	body := s.bodyMap.Get(s.frog)
	hop := s.hopMap.Get(s.frog)
	body.Current = spawnPosition()
	body.Target = spawnPosition()
	body.Start = spawnPosition()
	hop.Progress = 0
	hop.Active = false
	hop.PadID = -1
}

func (s *Sim) emit(e Event) {
	if s.OnEvent != nil {
		s.OnEvent(e)
	}
}

package game

import "github.com/froggyhop/froggyhop/internal/world"

// FrogView is the frog as a renderer sees it.
type FrogView struct {
	Position world.Vec3
	Target   world.Vec3
	Hopping  bool
	Progress float64
}

// PadView is a visible pad plus whether the frog has landed on it.
type PadView struct {
	world.LilyPad
	Visited bool
}

// Snapshot is a read-only copy of everything a front end draws.
type Snapshot struct {
	Frog     FrogView
	Pads     []PadView // visible pads only, board order
	Pond     string
	Score    int
	Lives    int
	Playing  bool
	GameOver bool
	Level    int
}

// Snapshot copies the current state. Mutating the result does not affect the
// simulation.
func (s *Sim) Snapshot() Snapshot {
	body := s.bodyMap.Get(s.frog)
	hop := s.hopMap.Get(s.frog)

	pads := make([]PadView, 0, len(s.Board.Pads))
	for _, p := range s.Board.Pads {
		if !p.Visible() {
			continue
		}
		_, visited := s.visited[p.ID]
		pads = append(pads, PadView{LilyPad: p, Visited: visited})
	}

	return Snapshot{
		Frog: FrogView{
			Position: body.Current,
			Target:   body.Target,
			Hopping:  hop.Active,
			Progress: hop.Progress,
		},
		Pads:     pads,
		Pond:     s.Board.Name,
		Score:    s.Session.Score,
		Lives:    s.Session.Lives,
		Playing:  s.Session.Playing,
		GameOver: s.Session.GameOver,
		Level:    s.Session.Level,
	}
}

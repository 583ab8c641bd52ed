package game

// CommandKind is an input a front end can send to the simulation.
type CommandKind uint8

const (
	CmdHop   CommandKind = iota // hop in Dir
	CmdBegin                    // start a game from the title screen
	CmdReset                    // leave the game-over screen
)

// Command is one discrete player input.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// HopCommand is shorthand for a hop in d.
func HopCommand(d Direction) Command {
	return Command{Kind: CmdHop, Dir: d}
}

// Dispatch applies a command. It returns false when the command was ignored
// in the current state.
func (s *Sim) Dispatch(c Command) bool {
	switch c.Kind {
	case CmdHop:
		return s.Hop(c.Dir)
	case CmdBegin:
		return s.Begin()
	case CmdReset:
		if !s.Session.GameOver {
			return false
		}
		s.Reset()
		return true
	}
	return false
}

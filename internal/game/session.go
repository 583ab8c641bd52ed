package game

// Session is the score and lives bookkeeping for one game.
//
// A new session is neutral: not playing and not over. Start puts it into play;
// running out of lives ends it.
type Session struct {
	Score    int
	Lives    int
	Playing  bool
	GameOver bool
	Level    int // tracked for display; nothing advances it
}

// NewSession returns a session in the neutral state.
func NewSession() Session {
	return Session{Lives: StartingLives, Level: StartingLevel}
}

// Start resets the session into play.
func (s *Session) Start() {
	*s = Session{
		Lives:   StartingLives,
		Playing: true,
		Level:   StartingLevel,
	}
}

// AddScore adds points. There is no cap.
func (s *Session) AddScore(points int) {
	s.Score += points
}

// LoseLife takes one life away, ending the game when none are left.
func (s *Session) LoseLife() {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
		s.Playing = false
	}
}

// Reset returns to the neutral pre-game state.
func (s *Session) Reset() {
	*s = NewSession()
}

// CanBegin reports whether a begin command should start a new game: only from
// the neutral state, never mid-game or straight from the game-over screen.
func (s *Session) CanBegin() bool {
	return !s.Playing && !s.GameOver
}

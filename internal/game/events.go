package game

// EventKind names something the simulation did that a front end may want to
// react to (sound, screen flash).
type EventKind uint8

const (
	EventStart    EventKind = iota // a new game began
	EventHop                       // the frog left its pad
	EventLand                      // the frog reached a pad
	EventNewPad                    // first landing on a pad; Points is set
	EventSinking                   // an unsafe pad started to sink
	EventSplash                    // the frog hit open water
	EventLifeLost                  // a life was lost and the frog respawned
	EventGameOver                  // the last life was lost
)

// Event is delivered to Sim.OnEvent. PadID is -1 when no pad is involved.
type Event struct {
	Kind   EventKind
	PadID  int
	Points int
}

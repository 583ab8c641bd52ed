package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player is anything that can sound an effect.
type Player interface {
	Play(e Effect)
}

// Listener adapts a Player into a Sim.OnEvent callback.
func Listener(p Player) func(game.Event) {
	return func(ev game.Event) {
		if e := EffectFor(ev); e != EffectNone {
			p.Play(e)
		}
	}
}

// Speaker plays effects on the system audio device through beep's speaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker initialises the audio device with a 100ms buffer.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes e into whatever is already sounding.
func (s *Speaker) Play(e Effect) {
	if e == EffectNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(Stream(e))
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Mute is a Player that drops everything.
type Mute struct{}

func (Mute) Play(Effect) {}

package audio

import (
	"bytes"
	"testing"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/world"
)

func drain(e Effect) (frames int, peak float64) {
	s := Stream(e)
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for _, f := range buf[:n] {
			for _, v := range f {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		frames += n
		if !ok || n == 0 {
			return frames, peak
		}
	}
}

func TestStreamLength(t *testing.T) {
	for _, e := range Effects {
		t.Run(e.String(), func(t *testing.T) {
			frames, peak := drain(e)
			if want := SampleRate.N(e.Duration()); frames != want {
				t.Fatalf("frames = %d, want %d", frames, want)
			}
			if peak == 0 {
				t.Fatal("effect is silent")
			}
			if peak > 1 {
				t.Fatalf("peak = %f, want <= 1", peak)
			}
		})
	}
}

func TestStreamNone(t *testing.T) {
	if frames, _ := drain(EffectNone); frames != 0 {
		t.Fatalf("EffectNone frames = %d, want 0", frames)
	}
}

func TestPCM(t *testing.T) {
	for _, e := range Effects {
		t.Run(e.String(), func(t *testing.T) {
			pcm := PCM(e)
			if want := SampleRate.N(e.Duration()) * 4; len(pcm) != want {
				t.Fatalf("len(PCM) = %d, want %d", len(pcm), want)
			}
			// streams are rebuilt per call and noise is seeded
			if !bytes.Equal(pcm, PCM(e)) {
				t.Fatal("PCM not deterministic")
			}
		})
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{2, 32767},
		{-1, -32767},
		{-3, -32767},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		kind game.EventKind
		want Effect
	}{
		{game.EventStart, EffectNone},
		{game.EventHop, Chirp},
		{game.EventLand, EffectNone},
		{game.EventNewPad, Coin},
		{game.EventSinking, Gurgle},
		{game.EventSplash, Splash},
		{game.EventLifeLost, Croak},
		{game.EventGameOver, EffectNone},
	}
	for _, tt := range tests {
		if got := EffectFor(game.Event{Kind: tt.kind}); got != tt.want {
			t.Errorf("EffectFor(%d) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

type recorder []Effect

func (r *recorder) Play(e Effect) { *r = append(*r, e) }

func TestListenerWithSim(t *testing.T) {
	var got recorder
	sim := game.NewSim(game.FixedBoard(oneHopBoard()))
	sim.OnEvent = Listener(&got)

	sim.Begin()
	sim.Hop(game.DirRight)
	for i := 0; i < 100; i++ {
		sim.Update(game.SinkDelay / 30)
	}

	want := []Effect{Chirp, Coin}
	if len(got) != len(want) {
		t.Fatalf("played %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("played %v, want %v", got, want)
		}
	}
}

func oneHopBoard() *world.Board {
	b := world.NewBoard("test")
	b.Pads = append(b.Pads, world.LilyPad{ID: 1, Position: world.Vec3{X: 2.5}, Size: 1, Safe: true})
	return b
}

package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by the speaker sink and the PCM renderer so Ebitengine
// can use the same rate for its audio context.
const SampleRate = beep.SampleRate(48000)

// Effect is one of the pond's sound effects.
type Effect uint8

const (
	EffectNone Effect = iota
	Chirp             // hop
	Splash            // fell in the water
	Gurgle            // pad going under
	Coin              // new pad
	Croak             // life lost
)

func (e Effect) String() string {
	switch e {
	case Chirp:
		return "chirp"
	case Splash:
		return "splash"
	case Gurgle:
		return "gurgle"
	case Coin:
		return "coin"
	case Croak:
		return "croak"
	}
	return "none"
}

// Duration is the exact length of the effect's stream.
func (e Effect) Duration() time.Duration {
	switch e {
	case Chirp:
		return 120 * time.Millisecond
	case Splash:
		return 350 * time.Millisecond
	case Gurgle:
		return 500 * time.Millisecond
	case Coin:
		return 2 * coinNote
	case Croak:
		return 400 * time.Millisecond
	}
	return 0
}

const coinNote = 90 * time.Millisecond

// Effects lists every playable effect.
var Effects = []Effect{Chirp, Splash, Gurgle, Coin, Croak}

// EffectFor picks the sound for a simulation event.
func EffectFor(ev game.Event) Effect {
	switch ev.Kind {
	case game.EventHop:
		return Chirp
	case game.EventNewPad:
		return Coin
	case game.EventSinking:
		return Gurgle
	case game.EventSplash:
		return Splash
	case game.EventLifeLost:
		return Croak
	}
	// game over always follows a life-lost croak
	return EffectNone
}

// WaveType selects a voice's oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// voice is a single oscillator sweeping linearly from freq to endFreq with a
// linear attack and release.
type voice struct {
	freq, endFreq float64
	wobble        float64 // vibrato depth in Hz at 8 Hz
	wave          WaveType
	phase         float64
	position      int
	total         int
	attack        int
	release       int
	rate          beep.SampleRate
	rng           *rand.Rand
}

func newVoice(freq, endFreq float64, d time.Duration, wave WaveType) *voice {
	total := SampleRate.N(d)
	return &voice{
		freq:    freq,
		endFreq: endFreq,
		wave:    wave,
		total:   total,
		attack:  SampleRate.N(5 * time.Millisecond),
		release: total / 3,
		rate:    SampleRate,
		rng:     rand.New(rand.NewPCG(0x5eed, uint64(total))),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.total {
			return i, i > 0
		}

		var val float64
		switch v.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * v.phase)
		case WaveSquare:
			if v.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (v.phase - 0.5)
		case WaveNoise:
			val = v.rng.Float64()*2 - 1
		}
		val *= v.gain()

		samples[i][0] = val
		samples[i][1] = val

		t := float64(v.position) / float64(v.total)
		f := v.freq + (v.endFreq-v.freq)*t
		if v.wobble != 0 {
			f += v.wobble * math.Sin(2*math.Pi*8*float64(v.position)/float64(v.rate))
		}
		v.phase += f / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func (v *voice) gain() float64 {
	if v.attack > 0 && v.position < v.attack {
		return float64(v.position) / float64(v.attack)
	}
	if left := v.total - v.position; v.release > 0 && left < v.release {
		return float64(left) / float64(v.release)
	}
	return 1
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Stream builds a fresh streamer for e that ends after e.Duration().
func Stream(e Effect) beep.Streamer {
	var s beep.Streamer
	switch e {
	case Chirp:
		s = newVolume(newVoice(600, 1300, e.Duration(), WaveSine), 0.5)
	case Splash:
		s = newVolume(newVoice(0, 0, e.Duration(), WaveNoise), 0.35)
	case Gurgle:
		g := newVoice(110, 55, e.Duration(), WaveSquare)
		g.wobble = 25
		s = newVolume(g, 0.2)
	case Coin:
		s = newVolume(beep.Seq(
			newVoice(988, 988, coinNote, WaveSine),
			newVoice(1319, 1319, coinNote, WaveSine),
		), 0.45)
	case Croak:
		c := newVoice(150, 85, e.Duration(), WaveSaw)
		c.wobble = 12
		s = newVolume(c, 0.35)
	default:
		return beep.Silence(0)
	}
	return beep.Take(SampleRate.N(e.Duration()), s)
}

// PCM renders e as 16-bit little-endian stereo, the format Ebitengine's audio
// players read.
func PCM(e Effect) []byte {
	s := Stream(e)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, SampleRate.N(e.Duration())*4)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

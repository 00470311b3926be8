package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Tone describes a short square-wave blip whose volume falls linearly to
// silence after Decay, then stays silent until Length ends.
type Tone struct {
	Freq   float64 // Hz
	Length time.Duration
	Decay  time.Duration
	Volume float64 // peak amplitude, 0..1
}

// Built-in effects, keyed by the names the game fires.
var tones = map[string]Tone{
	"collision": {Freq: 1100, Length: 90 * time.Millisecond, Decay: 45 * time.Millisecond, Volume: 0.3},
	"point":     {Freq: 2750, Length: 68 * time.Millisecond, Decay: 36 * time.Millisecond, Volume: 0.2},
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	decay    int
}

// NewToneStreamer returns a finite streamer for t at the given rate.
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Length),
		decay: rate.N(t.Decay),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		val := 1.0
		if s.phase >= 0.5 {
			val = -1.0
		}

		env := 0.0
		if s.decay > 0 && s.position < s.decay {
			env = 1 - float64(s.position)/float64(s.decay)
		}
		val *= env * s.tone.Volume

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.tone.Freq / float64(s.rate)
		s.phase -= float64(int(s.phase))
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

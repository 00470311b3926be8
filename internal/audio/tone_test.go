package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := Tone{Freq: 1000, Length: 100 * time.Millisecond, Decay: 50 * time.Millisecond, Volume: 0.5}

	samples := drain(NewToneStreamer(tone, rate))

	if len(samples) != rate.N(tone.Length) {
		t.Errorf("Expected %d samples, got %d", rate.N(tone.Length), len(samples))
	}
}

func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := Tone{Freq: 500, Length: 100 * time.Millisecond, Decay: 50 * time.Millisecond, Volume: 0.3}

	samples := drain(NewToneStreamer(tone, rate))
	decay := rate.N(tone.Decay)

	if math.Abs(samples[0][0]) != 0.3 {
		t.Errorf("Expected full volume at start, got %f", samples[0][0])
	}
	for i, s := range samples {
		if math.Abs(s[0]) > tone.Volume+1e-9 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
		if i >= decay && s[0] != 0 {
			t.Fatalf("Sample %d should be silent after decay, got %f", i, s[0])
		}
		if i > 0 && i < decay && math.Abs(s[0]) > math.Abs(samples[i-1][0])+1e-9 {
			t.Fatalf("Volume rose at sample %d", i)
		}
	}
}

func TestToneIsSquare(t *testing.T) {
	rate := beep.SampleRate(8000)
	// 1 kHz at 8 kHz: four samples high, four low.
	tone := Tone{Freq: 1000, Length: 10 * time.Millisecond, Decay: 10 * time.Millisecond, Volume: 1}

	samples := drain(NewToneStreamer(tone, rate))
	for i := 0; i < 16; i++ {
		wantPositive := (i/4)%2 == 0
		if (samples[i][0] > 0) != wantPositive {
			t.Fatalf("Sample %d has wrong polarity: %f", i, samples[i][0])
		}
	}
}

func TestBuiltinTones(t *testing.T) {
	for _, name := range []string{"collision", "point"} {
		tone, ok := tones[name]
		if !ok {
			t.Errorf("Missing tone %q", name)
			continue
		}
		if tone.Decay > tone.Length || tone.Volume <= 0 || tone.Volume > 1 {
			t.Errorf("Tone %q is malformed: %+v", name, tone)
		}
	}
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	p := NewPlayer(nil)
	// Must not panic or block without an audio device.
	p.Play("collision")
	p.Play("nope")
	p.Close()
}

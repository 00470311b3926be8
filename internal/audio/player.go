// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short effects into a single speaker stream. Until Init
// succeeds every Play is a silent no-op.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	logger *log.Logger
}

// NewPlayer creates a player. It does not touch the audio device.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		p.logger.Warn("audio unavailable, sound disabled", "error", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play starts the named effect and returns immediately.
// Unknown names are ignored.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	tone, ok := tones[name]
	if !ok {
		p.logger.Debug("unknown sound", "name", name)
		return
	}

	// The mixer is read from the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(NewToneStreamer(tone, sampleRate))
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.ready = false
}

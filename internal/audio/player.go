// Package audio plays short synthesized cues for game events. Playback is
// fire-and-forget; when no audio device is available the player stays
// silent and the game carries on.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player plays cues through the system speaker.
type Player struct {
	mu      sync.Mutex
	enabled bool
	muted   bool
	rate    beep.SampleRate
	log     *log.Logger
	play    func(beep.Streamer)
}

// New initializes the speaker. If that fails the error is logged and a
// silent player is returned.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", speakerErr)
		return &Player{rate: sampleRate, log: logger}
	}
	return &Player{
		enabled: true,
		rate:    sampleRate,
		log:     logger,
		play:    func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{rate: sampleRate, log: log.New(io.Discard)}
}

// Enabled reports whether a device is attached.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// ToggleMute flips muting and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Play starts a cue. Unknown cues are ignored.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.muted || p.play == nil {
		return
	}
	s, err := Stream(cue, p.rate)
	if err != nil {
		p.log.Debug("skipping cue", "cue", cue, "error", err)
		return
	}
	p.play(s)
}

// PlayAll plays every cue in order of appearance.
func (p *Player) PlayAll(cues []string) {
	for _, c := range cues {
		p.Play(c)
	}
}

// Close stops playback. The player is silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		speaker.Clear()
	}
	p.enabled = false
}

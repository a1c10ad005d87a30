package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/mazechase/internal/core"
)

// note is one step of a cue. A zero frequency is a rest.
type note struct {
	freq   float64
	dur    time.Duration
	square bool
}

func n(freq float64, ms int) note  { return note{freq: freq, dur: time.Duration(ms) * time.Millisecond} }
func sq(freq float64, ms int) note { return note{freq: freq, dur: time.Duration(ms) * time.Millisecond, square: true} }

var tunes = map[string][]note{
	core.CueStart:        {n(494, 90), n(988, 90), n(740, 90), n(622, 90), n(988, 60), n(0, 30), n(740, 120)},
	core.CueChomp:        {sq(220, 40), sq(330, 40)},
	core.CuePower:        {n(392, 70), n(523, 70), n(659, 70), n(784, 140)},
	core.CuePursuerEaten: {sq(880, 50), sq(1175, 50), sq(1568, 90)},
	core.CueBonus:        {n(1047, 60), n(1319, 60), n(1568, 120)},
	core.CueDeath:        {n(784, 100), n(659, 100), n(523, 100), n(392, 100), n(262, 240)},
	core.CueLevel:        {n(523, 80), n(659, 80), n(784, 80), n(1047, 200)},
	core.CueGameOver:     {n(392, 180), n(330, 180), n(262, 360)},
}

const cueVolume = 0.25

// Known reports whether a cue has a tune.
func Known(cue string) bool {
	_, ok := tunes[cue]
	return ok
}

// Stream builds the finite streamer for a cue.
func Stream(cue string, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := tunes[cue]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %q", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		samples := rate.N(nt.dur)
		if nt.freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		osc, err := tone(rate, nt)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %q: %w", cue, err)
		}
		parts = append(parts, beep.Take(samples, osc))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(cueVolume),
	}, nil
}

// Samples returns the exact length of a cue at rate.
func Samples(cue string, rate beep.SampleRate) int {
	total := 0
	for _, nt := range tunes[cue] {
		total += rate.N(nt.dur)
	}
	return total
}

func tone(rate beep.SampleRate, nt note) (beep.Streamer, error) {
	if nt.square {
		return generators.SquareTone(rate, nt.freq)
	}
	return generators.SineTone(rate, nt.freq)
}

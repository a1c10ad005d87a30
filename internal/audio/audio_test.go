package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/mazechase/internal/core"
)

var allCues = []string{
	core.CueStart,
	core.CueChomp,
	core.CuePower,
	core.CuePursuerEaten,
	core.CueBonus,
	core.CueDeath,
	core.CueLevel,
	core.CueGameOver,
}

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return total
}

func TestStreamEveryCue(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, cue := range allCues {
		t.Run(cue, func(t *testing.T) {
			if !Known(cue) {
				t.Fatalf("Known(%q) = false", cue)
			}
			s, err := Stream(cue, rate)
			if err != nil {
				t.Fatalf("Stream() error = %v", err)
			}
			want := Samples(cue, rate)
			if want == 0 {
				t.Fatal("Samples() = 0, expected a non-empty cue")
			}
			if got := drain(t, s); got != want {
				t.Errorf("streamed %d samples, expected %d", got, want)
			}
		})
	}
}

func TestStreamUnknownCue(t *testing.T) {
	if Known("kazoo") {
		t.Error("Known(kazoo) = true, expected false")
	}
	if _, err := Stream("kazoo", sampleRate); err == nil {
		t.Error("Stream(kazoo) error = nil, expected an error")
	}
}

func newRecordingPlayer() (*Player, *int) {
	count := 0
	p := &Player{
		enabled: true,
		rate:    beep.SampleRate(8000),
		log:     log.New(io.Discard),
		play:    func(beep.Streamer) { count++ },
	}
	return p, &count
}

func TestPlayerPlay(t *testing.T) {
	p, count := newRecordingPlayer()

	p.PlayAll([]string{core.CueChomp, "kazoo", core.CueDeath})
	if *count != 2 {
		t.Errorf("played %d cues, expected 2 (unknown skipped)", *count)
	}

	if muted := p.ToggleMute(); !muted {
		t.Fatal("ToggleMute() = false, expected true")
	}
	p.Play(core.CueChomp)
	if *count != 2 {
		t.Errorf("played %d cues while muted, expected 2", *count)
	}

	p.ToggleMute()
	p.Play(core.CueChomp)
	if *count != 3 {
		t.Errorf("played %d cues after unmute, expected 3", *count)
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	if p.Enabled() {
		t.Error("Enabled() = true for a silent player")
	}
	// Must not panic without a device
	p.PlayAll(allCues)
	p.Close()
}

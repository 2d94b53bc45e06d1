package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// Note frequencies in Hz.
var (
	musicNotes  = []float64{262, 294, 330, 349, 392, 349, 330, 294}
	winNotes    = []float64{523, 659, 784, 1047}
	selectNote  = 440.0
	musicLength = 4 * time.Second
	winLength   = time.Second
	selectLen   = 100 * time.Millisecond
)

// envelope fades a finite stream in over attack samples and out over the
// last release samples.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := range n {
		gain := 1.0
		p := e.pos + i
		if e.attack > 0 && p < e.attack {
			gain = float64(p) / float64(e.attack)
		}
		if rem := e.total - p; e.release > 0 && rem < e.release {
			gain = min(gain, float64(rem)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	e.pos += n
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// note renders one sine tone of n samples into a streamer with a fade.
func note(sr beep.SampleRate, freq float64, n, attack, release int, amp float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0f Hz: %w", freq, err)
	}
	fade := &envelope{s: beep.Take(n, tone), total: n, attack: attack, release: release}
	return &gain{s: fade, g: amp}, nil
}

// gain scales a stream by a fixed linear factor.
type gain struct {
	s beep.Streamer
	g float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := range n {
		samples[i][0] *= g.g
		samples[i][1] *= g.g
	}
	return n, ok
}

func (g *gain) Err() error { return g.s.Err() }

// sequence renders notes of equal length back to back into a buffer.
func sequence(sr beep.SampleRate, freqs []float64, total time.Duration, attack, release time.Duration, amp float64) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	per := sr.N(total) / len(freqs)
	for _, f := range freqs {
		s, err := note(sr, f, per, sr.N(attack), sr.N(release), amp)
		if err != nil {
			return nil, err
		}
		buf.Append(s)
	}
	return buf, nil
}

// sounds holds the prerendered clips.
type sounds struct {
	music *beep.Buffer
	win   *beep.Buffer
	sel   *beep.Buffer
}

func render(sr beep.SampleRate) (*sounds, error) {
	music, err := sequence(sr, musicNotes, musicLength, 50*time.Millisecond, 50*time.Millisecond, 0.45)
	if err != nil {
		return nil, err
	}
	win, err := sequence(sr, winNotes, winLength, 0, time.Second/30, 0.6)
	if err != nil {
		return nil, err
	}
	sel, err := sequence(sr, []float64{selectNote}, selectLen, 0, selectLen, 0.6)
	if err != nil {
		return nil, err
	}
	return &sounds{music: music, win: win, sel: sel}, nil
}

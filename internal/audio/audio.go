// Package audio plays the game's sound cues and looping background music
// through the system speaker.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate matches the rate the cues are designed for.
const DefaultSampleRate = beep.SampleRate(22050)

// Manager owns the speaker and implements the game's Audio interface.
// Calls before Init, or while muted, do nothing.
type Manager struct {
	mu sync.Mutex

	log         *log.Logger
	sampleRate  beep.SampleRate
	initialized bool
	muted       bool
	volume      float64 // 0.0 to 1.0

	clips   *sounds
	mixer   *beep.Mixer
	music   *beep.Ctrl
	playing bool
}

// New creates an audio manager.
func New(sampleRate int, volume float64, muted bool, logger *log.Logger) *Manager {
	sr := DefaultSampleRate
	if sampleRate > 0 {
		sr = beep.SampleRate(sampleRate)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		log:        logger,
		sampleRate: sr,
		volume:     clamp(volume, 0, 1),
		muted:      muted,
		mixer:      &beep.Mixer{},
	}
}

// Init renders the clips and opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	clips, err := render(m.sampleRate)
	if err != nil {
		return err
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.clips = clips
	m.initialized = true
	return nil
}

// Close stops all playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.music = nil
	m.playing = false
	m.initialized = false
}

// SetMuted silences or restores output. Muting stops the music.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if muted {
		m.stopMusic()
	}
}

// Muted reports whether output is silenced.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// MusicPlaying reports whether the background loop is active.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// PlaySelect plays the menu selection blip.
func (m *Manager) PlaySelect() {
	m.playClip(func(c *sounds) *beep.Buffer { return c.sel })
}

// PlayWin plays the exit fanfare.
func (m *Manager) PlayWin() {
	m.playClip(func(c *sounds) *beep.Buffer { return c.win })
}

func (m *Manager) playClip(pick func(*sounds) *beep.Buffer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	buf := pick(m.clips)
	s := m.withVolume(buf.Streamer(0, buf.Len()))

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background loop, restarting it if already playing.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	m.stopMusic()

	loop := &looper{s: m.clips.music.Streamer(0, m.clips.music.Len())}
	ctrl := &beep.Ctrl{Streamer: m.withVolume(loop)}

	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()

	m.music = ctrl
	m.playing = true
	m.log.Debug("music started")
}

// StopMusic stops the background loop.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusic()
}

func (m *Manager) stopMusic() {
	if m.music == nil {
		return
	}
	// A Ctrl without a streamer drains, and the mixer drops it.
	speaker.Lock()
	m.music.Streamer = nil
	speaker.Unlock()

	m.music = nil
	m.playing = false
	m.log.Debug("music stopped")
}

func (m *Manager) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToDb(m.volume) / 6, // 6 dB per doubling with base 2
		Silent:   m.volume <= 0,
	}
}

// looper replays a seekable clip forever.
type looper struct {
	s beep.StreamSeeker
}

func (l *looper) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.s.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			if err := l.s.Seek(0); err != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *looper) Err() error { return l.s.Err() }

// volumeToDb converts a 0-1 volume to decibels: 1 is 0 dB, 0.5 about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

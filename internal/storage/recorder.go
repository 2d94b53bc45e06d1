package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze3d/internal/core"
)

// Recorder turns game events into stored runs and level times.
// Saves are best effort: failures are logged and play continues.
// A Recorder with a nil Store only tracks the run in memory.
type Recorder struct {
	store      *Store
	log        *log.Logger
	player     string
	difficulty string

	run *Run
}

// NewRecorder creates a recorder for one player at one difficulty.
func NewRecorder(store *Store, player, difficulty string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:      store,
		log:        logger,
		player:     player,
		difficulty: difficulty,
	}
}

// Record consumes the events of one tick.
func (r *Recorder) Record(state core.GameState, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLevelLoaded:
			if ev.Level == 0 {
				r.run = &Run{
					Player:      r.player,
					Difficulty:  r.difficulty,
					Seed:        ev.Seed,
					TotalLevels: state.Levels,
				}
			}
		case core.EventLevelComplete:
			r.levelComplete(ev)
		case core.EventWin:
			if r.run != nil {
				r.run.Completed = true
				r.run.Ticks = ev.RunTicks
			}
			r.finish()
		case core.EventMenuReturn, core.EventQuit:
			r.finish()
		}
	}
}

// Abandon stores an in-progress run as incomplete, for a frontend that is
// shutting down mid-level.
func (r *Recorder) Abandon() {
	r.finish()
}

// Active returns a copy of the run in progress, if any.
func (r *Recorder) Active() (Run, bool) {
	if r.run == nil {
		return Run{}, false
	}
	return *r.run, true
}

func (r *Recorder) levelComplete(ev core.Event) {
	if r.run != nil {
		r.run.Levels = ev.Level + 1
		r.run.Ticks = ev.RunTicks
	}
	if r.store == nil {
		return
	}
	_, err := r.store.SaveLevelTime(LevelTime{
		Player:     r.player,
		Difficulty: r.difficulty,
		Level:      ev.Level,
		Ticks:      ev.Ticks,
		Seed:       ev.Seed,
	})
	if err != nil {
		r.log.Warn("could not save level time", "level", ev.Level+1, "err", err)
	}
}

func (r *Recorder) finish() {
	run := r.run
	r.run = nil
	if run == nil || r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(*run); err != nil {
		r.log.Warn("could not save run", "err", err)
		return
	}
	r.log.Debug("run saved", "levels", run.Levels, "ticks", run.Ticks, "completed", run.Completed)
}

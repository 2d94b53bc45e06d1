//go:build !cgo

package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/storage"
)

// Config holds window settings.
type Config struct {
	Title    string
	Scale    int
	TickRate int
	Recorder *storage.Recorder
	Logger   *log.Logger
}

// Run reports that the window frontend is unavailable in this build.
func Run(_ *maze3d.Game, _ Config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze3d/internal/config"
	"github.com/vovakirdan/maze3d/internal/platform/tui"
	"github.com/vovakirdan/maze3d/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the fastest completed runs and the best time per level for the
selected difficulty (see --difficulty; default from config).

Examples:
  maze3d scores
  maze3d scores --difficulty hard
  maze3d scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		exitf("opening run database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		names := make([]string, len(config.Presets))
		for i, p := range config.Presets {
			names[i] = string(p)
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, names, cfg.Render.TickRate, width, height); err != nil {
			store.Close()
			exitf("%v", err)
		}
		return
	}

	if err := printScores(os.Stdout, store, string(cfg.Difficulty), cfg.Render.TickRate, flagScoresLimit); err != nil {
		store.Close()
		exitf("%v", err)
	}
}

func printScores(w io.Writer, store *storage.Store, difficulty string, tickRate, limit int) error {
	runs, err := store.BestRuns(difficulty, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Runs - %s\n\n", difficulty)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No completed runs yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'maze3d play' to set the first time!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-10s  %-12s  %-20s  %s\n", "Rank", "Time", "Player", "Seed", "Date")
		fmt.Fprintf(w, "  %-4s  %-10s  %-12s  %-20s  %s\n", "----", "----", "------", "----", "----")
		for i, r := range runs {
			fmt.Fprintf(w, "  %-4d  %-10s  %-12s  %-20d  %s\n",
				i+1, tui.FormatTicks(r.Ticks, tickRate), r.Player, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(w)
	for level := 0; ; level++ {
		lt, err := store.BestLevelTime(difficulty, level)
		if err != nil {
			return err
		}
		if lt == nil {
			break
		}
		fmt.Fprintf(w, "Level %d best: %s by %s\n", level+1, tui.FormatTicks(lt.Ticks, tickRate), lt.Player)
	}

	stats, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	if stats.Runs > 0 {
		fmt.Fprintf(w, "\n%d runs, %d completed\n", stats.Runs, stats.Completed)
	}
	return nil
}

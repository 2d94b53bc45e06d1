// maze3d is a first-person maze explorer for the terminal, the desktop and
// SSH.
//
// Usage:
//
//	maze3d play              - Play in the terminal (--window for a desktop window)
//	maze3d serve             - Start SSH server for remote play
//	maze3d scores            - Show best runs and per-level times
//	maze3d levels            - Show the level table after presets
//	maze3d gen <w> <h>       - Print a generated maze
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set base RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.maze3d/maze3d.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or custom
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a rotating file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagSeedSet    bool
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze3d",
	Short: "Maze 3D - Find the exit of a first-person maze",
	Long: `Maze 3D drops you into a randomly generated maze, seen in first person.
Find the green exit to move on; clear every level to win.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  scores   - View best runs
  levels   - Show the level table
  gen      - Print a generated maze as ASCII

Examples:
  maze3d play
  maze3d play --window
  maze3d play --difficulty hard --seed 42
  maze3d serve --ssh :2222
  maze3d gen 8 8 --seed 1`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		flagSeedSet = cmd.Flags().Changed("seed")
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base RNG seed (unset = random based on time; 0 is a valid seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this rotating file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(genCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Shows the maze sizes a run goes through after the config file and the
difficulty preset are applied.

Examples:
  maze3d levels
  maze3d levels --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Levels - %s\n\n", cfg.Difficulty)
	fmt.Printf("  %-5s  %-9s  %s\n", "Level", "Cells", "Grid")
	fmt.Printf("  %-5s  %-9s  %s\n", "-----", "-----", "----")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-5d  %-9s  %dx%d\n", i+1,
			fmt.Sprintf("%dx%d", l.Width, l.Height), 2*l.Width+1, 2*l.Height+1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/tl/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for tl.

The TUI shows the report for one period at a time and lets you move
through your timelog with the keyboard.

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-4: Switch period (day, week, month, year)
  - h/l or arrows: Move one period into the past/future
  - 0: Jump back to the current period
  - r: Reload the timelog file
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services := loadServices()
	if services == nil {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

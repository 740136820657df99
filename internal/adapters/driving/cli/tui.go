package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sp80808/contextual-prompts/internal/adapters/driving/tui"
	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// runTUIFunc starts the interactive session. Tests replace it.
var runTUIFunc = tui.Run

var tuiWatch bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Look up prompts interactively",
	Long: `Launch an interactive lookup. Results update as you type.

Controls:
  ↑/↓  - Select a result
  Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "refresh results when the dataset file changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	path, err := resolveDataset()
	if err != nil {
		return err
	}

	topN, err := resolveTopN(cmd)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Lookup: domain.LookupOptions{DatasetPath: path, TopN: topN},
		Watch:  tuiWatch,
	}
	if err := runTUIFunc(cmd.Context(), lookupService, opts); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

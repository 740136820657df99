// Package cli provides the ctxprompts command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sp80808/contextual-prompts/internal/adapters/driven/config/file"
	"github.com/sp80808/contextual-prompts/internal/adapters/driven/dataset/csvfile"
	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driven"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driving"
	"github.com/sp80808/contextual-prompts/internal/core/services"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose     bool
	configDir   string
	datasetFlag string
)

// Services shared by every command. setup fills in whatever is still nil.
var (
	lookupService driving.LookupService
	configStore   driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "ctxprompts <context_query>",
	Short: "Find prompts relevant to a context query",
	Long: `Searches the awesome-chatgpt-prompts dataset for prompts whose act or
prompt text contains the query, ignoring case. Matches on the act weigh
more than matches on the prompt body.

The dataset is looked up in the current directory, then data/, then
docs/cline_docs/, unless --dataset or the dataset.path setting names it.

A query that is also a command name (config, help, mcp, tui, version) runs
that command. Put -- before the query to search for it instead:

  ctxprompts -- version`,
	Args:              requireQuery,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runLookup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "", "path to the prompts CSV")
	rootCmd.PersistentFlags().IntVarP(&lookupLimit, "limit", "n", domain.DefaultTopN, "maximum number of results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ctxprompts)")
	rootCmd.Flags().BoolVar(&lookupJSON, "json", false, "output results as JSON")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	})
}

func requireQuery(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one context query, got %d arguments", domain.ErrInvalidArgument, len(args))
	}
	return nil
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if configStore == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		configStore = store
		logger.Debug("Config: %s", store.Path())
	}

	if lookupService == nil {
		lookupService = services.NewLookupService(csvfile.NewLoader())
	}

	return nil
}

// Execute runs the root command and exits the process with its status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, domain.ErrInvalidArgument) {
		if cmd == rootCmd {
			fmt.Fprintln(stderr, "Usage: ctxprompts '<your context query>'")
			fmt.Fprintln(stderr, "       ctxprompts -- '<query that is a command name>'")
		} else {
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		}
	}
	return 1
}

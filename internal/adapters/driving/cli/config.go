package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// configParsers converts command line values for each settable key.
var configParsers = map[string]func(string) (any, error){
	keyDatasetPath: func(v string) (any, error) {
		return v, nil
	},
	keyDatasetSearchPaths: func(v string) (any, error) {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one path", domain.ErrInvalidArgument, keyDatasetSearchPaths)
		}
		return paths, nil
	},
	keyLookupTopN: func(v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer, got %q", domain.ErrInvalidArgument, keyLookupTopN, v)
		}
		return n, nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Settings are stored as TOML in <config-dir>/config.toml.

Keys:
  dataset.path          dataset file to use, skipping the search
  dataset.search_paths  comma-separated list of places to look for the dataset
  lookup.top_n          default number of results`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", configStore.Path())

	keys := configStore.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(out, "No settings.")
		return nil
	}

	for _, key := range keys {
		val, _ := configStore.Get(key)
		fmt.Fprintf(out, "%s = %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	parse, ok := configParsers[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidArgument, key)
	}

	val, err := parse(raw)
	if err != nil {
		return err
	}

	if err := configStore.Set(key, val); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, val)
	return nil
}

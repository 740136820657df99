package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sp80808/contextual-prompts/internal/adapters/driving/tui/styles"
	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/services"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

const datasetSource = "https://huggingface.co/datasets/fka/awesome-chatgpt-prompts"

// Config keys read by the lookup commands.
const (
	keyDatasetPath        = "dataset.path"
	keyDatasetSearchPaths = "dataset.search_paths"
	keyLookupTopN         = "lookup.top_n"
)

var (
	lookupLimit int
	lookupJSON  bool
)

func runLookup(cmd *cobra.Command, args []string) error {
	query := args[0]

	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	path, err := resolveDataset()
	if err != nil {
		return err
	}

	topN, err := resolveTopN(cmd)
	if err != nil {
		return err
	}

	logger.Debug("Dataset: %s", path)
	logger.Debug("Top N: %d", topN)

	opts := domain.LookupOptions{DatasetPath: path, TopN: topN}
	results, err := lookupService.Lookup(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if lookupJSON {
		return outputLookupJSON(out, results)
	}

	fmt.Fprintf(out, "Searching for prompts related to: '%s'...\n", query)
	outputLookupText(out, results)
	return nil
}

// datasetCandidates lists the paths to try, most specific first.
// An explicit flag or dataset.path setting is the only candidate.
func datasetCandidates() []string {
	if datasetFlag != "" {
		return []string{datasetFlag}
	}
	if configStore != nil {
		if p := configStore.GetString(keyDatasetPath); p != "" {
			return []string{p}
		}
		if paths := configStore.GetStringSlice(keyDatasetSearchPaths); len(paths) > 0 {
			return paths
		}
	}
	return services.DefaultDatasetPaths()
}

func resolveDataset() (string, error) {
	candidates := datasetCandidates()
	path, ok := services.ResolveDatasetPath(candidates)
	if !ok {
		return "", fmt.Errorf(
			"%w: could not find %s in %s. Download it from %s or pass --dataset",
			domain.ErrDatasetUnavailable, services.DatasetFileName, strings.Join(candidates, ", "), datasetSource,
		)
	}
	return path, nil
}

// resolveTopN prefers an explicit --limit, then lookup.top_n, then the default.
func resolveTopN(cmd *cobra.Command) (int, error) {
	topN := lookupLimit
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if _, ok := configStore.Get(keyLookupTopN); ok {
			topN = configStore.GetInt(keyLookupTopN)
		}
	}
	if topN < 0 {
		return 0, fmt.Errorf("%w: limit must not be negative, got %d", domain.ErrInvalidArgument, topN)
	}
	return topN, nil
}

func outputLookupJSON(w io.Writer, results []domain.PromptRecord) error {
	if results == nil {
		results = []domain.PromptRecord{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputLookupText(w io.Writer, results []domain.PromptRecord) {
	s := stylesFor(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No relevant prompts found for your query.")
		return
	}

	fmt.Fprintf(w, "\n%s\n", s.Title.Render("--- Relevant Prompts ---"))
	for i := range results {
		fmt.Fprintf(w, "\n%d. %s %s\n   %s %s\n\n",
			i+1, s.Label.Render("Act:"), results[i].Act, s.Label.Render("Prompt:"), results[i].Prompt)
	}
}

// stylesFor styles output only when w is a terminal.
func stylesFor(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

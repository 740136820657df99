package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/sp80808/contextual-prompts/internal/adapters/driven/dataset/csvfile"
	"github.com/sp80808/contextual-prompts/internal/adapters/driven/storage/memory"
	"github.com/sp80808/contextual-prompts/internal/core/services"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

const testCSV = `act,prompt
Linux Terminal,I want you to act as a linux terminal
Poet,Write a poem about an old terminal
Chef,Suggest recipes
`

// testEnv holds the services and dataset a CLI test runs against.
type testEnv struct {
	t       *testing.T
	store   *memory.ConfigStore
	dataset string
}

// setupTestServices installs an in-memory config store and the CSV lookup
// service, writes a dataset to a temp dir, and restores all globals after the test.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	dataset := writeDataset(t, t.TempDir(), "prompts.csv", testCSV)
	store := memory.NewConfigStore()

	configStore = store
	lookupService = services.NewLookupService(csvfile.NewLoader())

	originalTUI := runTUIFunc
	t.Cleanup(func() {
		configStore = nil
		lookupService = nil
		runTUIFunc = originalTUI
		resetFlags(rootCmd)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	return &testEnv{t: t, store: store, dataset: dataset}
}

// exec runs args through the CLI and returns the exit code, stdout and stderr.
func (e *testEnv) exec(args ...string) (code int, stdout, stderr string) {
	e.t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	resetFlags(rootCmd)
	return code, out.String(), errOut.String()
}

func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

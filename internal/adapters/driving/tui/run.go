// Package tui provides the interactive terminal lookup for ctxprompts.
package tui

import (
	"bytes"
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driving"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

// Options configures an interactive session.
type Options struct {
	// Lookup is passed to every query.
	Lookup domain.LookupOptions

	// Watch re-runs the current query when the dataset file changes.
	Watch bool
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, service driving.LookupService, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	restore := holdLogs()
	defer restore()

	model := NewModel(service, opts.Lookup, nil).WithContext(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Watch {
		if err := WatchDataset(ctx, opts.Lookup.DatasetPath, p.Send); err != nil {
			return err
		}
	}

	_, err := p.Run()
	return err
}

// holdLogs buffers log output while the alternate screen is up and returns a
// function that restores the previous writer and flushes the buffer to it.
func holdLogs() (restore func()) {
	prev := logger.Output()
	held := &lockedBuffer{}
	logger.SetOutput(held)

	return func() {
		logger.SetOutput(prev)
		held.WriteTo(prev) //nolint:errcheck
	}
}

// lockedBuffer is a bytes.Buffer safe for the concurrent writes the logger
// allows.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.WriteTo(w)
}

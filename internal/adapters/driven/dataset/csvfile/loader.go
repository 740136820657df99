package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driven"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DatasetLoader = (*Loader)(nil)

// Column names required in the header row.
const (
	ActColumn    = "act"
	PromptColumn = "prompt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads prompt records from CSV or TSV files.
type Loader struct{}

// NewLoader creates a new CSV dataset loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every record from the file at path.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.PromptRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, domain.ErrDatasetUnavailable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w: %w", path, domain.ErrDatasetUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrDatasetUnavailable)
	}

	records, err := Parse(ctx, f, delimiterFor(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Parse reads prompt records from r using the given field delimiter.
func Parse(ctx context.Context, r io.Reader, comma rune) ([]domain.PromptRecord, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", domain.ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedDataset, err)
	}

	actIdx, promptIdx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.PromptRecord
	short := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedDataset, err)
		}

		if actIdx >= len(row) || promptIdx >= len(row) {
			short++
		}
		records = append(records, domain.PromptRecord{
			Act:    field(row, actIdx),
			Prompt: field(row, promptIdx),
		})
	}

	if short > 0 {
		logger.Warn("%d rows are missing the act or prompt field; treating it as empty", short)
	}
	if records == nil {
		records = []domain.PromptRecord{}
	}
	return records, nil
}

// resolveColumns finds the act and prompt columns in header.
func resolveColumns(header []string) (actIdx, promptIdx int, err error) {
	actIdx, promptIdx = -1, -1
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		switch {
		case actIdx < 0 && strings.EqualFold(name, ActColumn):
			actIdx = i
		case promptIdx < 0 && strings.EqualFold(name, PromptColumn):
			promptIdx = i
		}
	}

	var missing []string
	if actIdx < 0 {
		missing = append(missing, ActColumn)
	}
	if promptIdx < 0 {
		missing = append(missing, PromptColumn)
	}
	if len(missing) > 0 {
		return -1, -1, fmt.Errorf("%w: header is missing column(s) %s",
			domain.ErrMalformedDataset, strings.Join(missing, ", "))
	}
	return actIdx, promptIdx, nil
}

func field(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// skipBOM drops a leading UTF-8 byte order mark so a quoted first header
// cell still parses.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func delimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

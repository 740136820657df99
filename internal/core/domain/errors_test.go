package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{ErrDatasetUnavailable, ErrMalformedDataset, ErrInvalidArgument}
	for i := range errs {
		for j := range errs {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, errs[i], errs[j])
		}
	}
}

func TestErrors_WrapAndUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("open data.csv: %w", ErrDatasetUnavailable)

	assert.True(t, errors.Is(wrapped, ErrDatasetUnavailable))
	assert.False(t, errors.Is(wrapped, ErrMalformedDataset))
	assert.Contains(t, wrapped.Error(), "dataset unavailable")
}

func TestDefaultTopN(t *testing.T) {
	assert.Equal(t, 5, DefaultTopN)
}

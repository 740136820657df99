package domain

import "errors"

// Domain errors represent lookup failures.
// Adapters wrap these with context; callers match them with errors.Is.
var (
	// ErrDatasetUnavailable indicates the dataset file cannot be located or opened.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrMalformedDataset indicates the dataset could not be parsed or lacks
	// the act/prompt columns.
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrInvalidArgument indicates a missing or out-of-range argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

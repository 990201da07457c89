package basket

import "errors"

// Sentinel errors for dataset generation
var (
	// Bad command-line or programmatic parameters. Always detected before
	// the output file is opened.
	ErrInvalidArgument = errors.New("invalid argument")

	// The output file could not be created, written, flushed or closed.
	ErrIOFailure = errors.New("io failure")

	// A dataset read back by Verify does not have the expected shape.
	ErrMalformedDataset = errors.New("malformed dataset")
)

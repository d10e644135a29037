package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrEmptyDataset      = errors.New("dataset has no header row")
	ErrMissingColumn     = errors.New("dataset is missing a required column")
	ErrParse             = errors.New("dataset parse failed")
	ErrFetch             = errors.New("dataset fetch failed")
	ErrTooLarge          = errors.New("dataset exceeds size limit")
)

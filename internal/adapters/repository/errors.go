package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNoDataset = errors.New("no dataset loaded")
)

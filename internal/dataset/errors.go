package dataset

import "errors"

var (
	// ErrUnknownDataset marks a dataset route name that does not exist.
	ErrUnknownDataset = errors.New("unknown dataset")
	// ErrUnknownView marks a view name the dataset does not expose.
	ErrUnknownView = errors.New("unknown view")
)

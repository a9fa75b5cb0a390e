package dataset

import "errors"

var (
	ErrReadingDataset   = errors.New("error reading dataset")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidColumn    = errors.New("invalid column")
)

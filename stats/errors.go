package stats

import "errors"

var ErrEmptyTable = errors.New("there are no trips to analyze")

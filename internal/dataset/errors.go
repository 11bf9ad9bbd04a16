package dataset

import "errors"

// ErrSourceUnavailable indicates the dataset file is missing or cannot be
// read. It is the only fatal condition the engine surfaces; everything
// else degrades to empty results.
var ErrSourceUnavailable = errors.New("dataset source unavailable")

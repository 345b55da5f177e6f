package store

import "errors"

// ErrNotFound is returned when no user or highscore record matches.
var ErrNotFound = errors.New("not found")

package storage

import "errors"

// ErrWriteFailed is returned when the backing store rejects a write.
// Callers persisting best-effort state log it and carry on.
var ErrWriteFailed = errors.New("storage: write failed")

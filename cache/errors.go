package cache

import "errors"

// ErrComputationConsumed is returned when a SingleCache is forced again after
// its one-shot computation failed.
var ErrComputationConsumed = errors.New("cached computation already consumed")

// ErrComputationPanicked is recorded as the failure of a computation that
// panicked instead of returning.
var ErrComputationPanicked = errors.New("cached computation panicked")

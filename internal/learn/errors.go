package learn

import "errors"

// Input errors. These are surfaced before any session state is created.
var (
	// ErrNoCards means the set has no cards to build a session from.
	ErrNoCards = errors.New("learn: no cards to study")

	// ErrNoEffectiveTypes means no enabled question type is available.
	// The caller must block entry into the session and surface it as a
	// settings validation failure, never default silently.
	ErrNoEffectiveTypes = errors.New("learn: no question types enabled")
)

// Validation errors. These block scoring without mutating any outcome.
var (
	// ErrEmptySelection means a multi-select answer selected nothing.
	ErrEmptySelection = errors.New("learn: select at least one option")

	// ErrEmptyAnswer means a written answer was blank.
	ErrEmptyAnswer = errors.New("learn: type an answer first")
)

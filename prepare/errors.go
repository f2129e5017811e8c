package prepare

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the sentinel behind every ValidationError; match with
	// errors.Is. The concrete *ValidationError carries the per-rule messages.
	ErrValidation = errors.New("prepare: model data failed validation")

	// ErrBadOptions is returned for nonsensical option values (negative R,
	// LambdaStep outside (0,1]).
	ErrBadOptions = errors.New("prepare: invalid options")

	// ErrProjectionShape is returned when the injected MDS strategy does not
	// produce exactly K×2 coordinates.
	ErrProjectionShape = errors.New("prepare: projection must return K×2 coordinates")
)

// ValidationError reports every violated input rule at once. Validation never
// stops at the first failure: all checks run and all messages are collected,
// so a single error lists everything wrong with the model data.
type ValidationError struct {
	// Violations holds one human-readable message per violated rule.
	Violations []string
}

// Error renders the full bulleted violation list.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrValidation.Error())
	for _, v := range e.Violations {
		sb.WriteString("\n * ")
		sb.WriteString(v)
	}

	return sb.String()
}

// Unwrap makes errors.Is(err, ErrValidation) work on collected failures.
func (e *ValidationError) Unwrap() error { return ErrValidation }

package tonic

import "errors"

var (
	// ErrNameNotFound is returned when a scale name does not resolve to any
	// registered interval pattern.
	ErrNameNotFound = errors.New("scale name not found")

	// ErrPatternNotFound is returned when an interval pattern has no
	// registered name.
	ErrPatternNotFound = errors.New("interval pattern not found")

	// ErrNotInScale is returned when a note cannot be reached by walking the
	// scale upwards from its root.
	ErrNotInScale = errors.New("note not in scale")

	// ErrUnsupportedSpecifier is returned when a scale is constructed from a
	// Specifier that is neither a name, a scale nor a list of steps.
	ErrUnsupportedSpecifier = errors.New("unsupported scale specifier")

	// ErrInvalidPattern is returned for an empty list of steps or a step that
	// is not positive.
	ErrInvalidPattern = errors.New("invalid interval pattern")

	// ErrInvalidNote is returned when a note name cannot be parsed.
	ErrInvalidNote = errors.New("invalid note")

	// ErrOutOfRange is returned when a note or a rendering option is outside
	// what the output format can represent.
	ErrOutOfRange = errors.New("value out of range")
)

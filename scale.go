package tonic

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type (
	// Scale is a rooted musical scale: a root note and the steps, in
	// semitones, between consecutive degrees. The steps repeat cyclically, so
	// the scale extends over any number of octaves. Degree 0 is the root.
	//
	// Scale is an immutable value; the zero Scale has no steps and is only
	// useful as the absent result of Relative.
	Scale struct {
		root      Note
		intervals []int
	}

	// Specifier tells NewScale where the steps of a scale come from. Make one
	// with Named, Like or Steps. The zero Specifier is not valid.
	Specifier struct {
		kind  specifierKind
		name  string
		steps []int
	}

	specifierKind int
)

const (
	specUnknown specifierKind = iota
	specName
	specScale
	specSteps
)

// Named specifies the steps registered for a scale name, e.g. "major" or
// "Dorian Mode".
func Named(name string) Specifier {
	return Specifier{kind: specName, name: name}
}

// Like specifies the steps of another scale. Only the steps are used, the
// root of the other scale is not.
func Like(s Scale) Specifier {
	return Specifier{kind: specScale, steps: s.intervals}
}

// Steps specifies the steps of a custom scale explicitly. All steps have to be
// positive. Custom scales need not sum up to an octave and need not be in the
// registry, but then they have no name.
func Steps(steps ...int) Specifier {
	return Specifier{kind: specSteps, steps: slices.Clone(steps)}
}

// NewScale constructs a scale rooted at root. The root is moved to octave 0;
// its octave carries no meaning for the scale.
func NewScale(root Note, spec Specifier) (Scale, error) {
	var steps []int
	switch spec.kind {
	case specName:
		var err error
		if steps, err = IntervalsFromName(spec.name); err != nil {
			return Scale{}, err
		}
	case specScale:
		steps = slices.Clone(spec.steps)
	case specSteps:
		if len(spec.steps) == 0 {
			return Scale{}, fmt.Errorf("%w: no steps", ErrInvalidPattern)
		}
		for _, s := range spec.steps {
			if s <= 0 {
				return Scale{}, fmt.Errorf("%w: step %d in %v is not positive", ErrInvalidPattern, s, spec.steps)
			}
		}
		steps = slices.Clone(spec.steps)
	default:
		return Scale{}, ErrUnsupportedSpecifier
	}
	if len(steps) == 0 {
		return Scale{}, fmt.Errorf("%w: no steps", ErrInvalidPattern)
	}
	return Scale{root: root.AtOctave(0), intervals: steps}, nil
}

// MustScale is like NewScale but panics if the scale cannot be constructed.
func MustScale(root Note, spec Specifier) Scale {
	s, err := NewScale(root, spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Root returns the root of the scale, in octave 0.
func (s Scale) Root() Note { return s.root }

// Intervals returns a copy of the steps of the scale.
func (s Scale) Intervals() []int { return slices.Clone(s.intervals) }

// Len returns the number of degrees in one cycle of the scale, not counting
// the root of the next cycle.
func (s Scale) Len() int { return len(s.intervals) }

// Get returns the note at the given degree. Degree 0 is the root, and every
// degree after it is the next step higher, cycling through the steps. Degree
// Len() is one full cycle above the root.
//
// A negative index walks the same way as its absolute value: Get(-n) equals
// Get(n).
func (s Scale) Get(index int) Note {
	if index < 0 {
		index = -index
	}
	note := s.root
	if len(s.intervals) == 0 {
		return note
	}
	for i := 0; i < index; i++ {
		note = note.Transpose(s.intervals[i%len(s.intervals)])
	}
	return note
}

// Index returns the degree of note in the scale. It walks up from the root
// until reaching a note that is not lower than the one searched; if that is
// not exactly the note, or the note is below the root, the error wraps
// ErrNotInScale.
func (s Scale) Index(note Note) (int, error) {
	if len(s.intervals) == 0 {
		return 0, fmt.Errorf("%w: %v has no steps", ErrNotInScale, note)
	}
	index := 0
	x := s.root
	for x.Less(note) {
		x = x.Transpose(s.intervals[index%len(s.intervals)])
		index++
	}
	if x == note {
		return index, nil
	}
	return 0, fmt.Errorf("%w: %v not in %v", ErrNotInScale, note, s)
}

// Contains reports whether note is one of the degrees of the scale.
func (s Scale) Contains(note Note) bool {
	_, err := s.Index(note)
	return err == nil
}

// Transpose moves a note of the scale by offset degrees: 1 moves it to the
// next degree (a second up), 2 to a third up and -1 one degree down. Fails
// with ErrNotInScale if the note is not in the scale.
func (s Scale) Transpose(note Note, offset int) (Note, error) {
	index, err := s.Index(note)
	if err != nil {
		return 0, err
	}
	return s.Get(index + offset), nil
}

// Names returns all the registered names of the steps of the scale, primary
// name first. Custom scales fail with ErrPatternNotFound.
func (s Scale) Names() ([]string, error) {
	return NamesForIntervals(s.intervals)
}

// Name returns the primary registered name of the scale.
func (s Scale) Name() (string, error) {
	names, err := s.Names()
	if err != nil {
		return "", err
	}
	return names[0], nil
}

// Relative returns the relative minor of a major scale (rooted three
// semitones lower) or the relative major of a minor scale (three semitones
// higher). For any other scale it returns false: such scales have no
// relative, which is not an error.
func (s Scale) Relative() (Scale, bool) {
	name, err := s.Name()
	if err != nil {
		return Scale{}, false
	}
	var ret Scale
	switch name {
	case "major":
		ret, err = NewScale(s.root.Transpose(-3), Named("minor"))
	case "minor":
		ret, err = NewScale(s.root.Transpose(3), Named("major"))
	default:
		return Scale{}, false
	}
	if err != nil {
		return Scale{}, false
	}
	return ret, true
}

// Equal reports whether the scales have the same root pitch class and the
// same steps.
func (s Scale) Equal(other Scale) bool {
	return s.root.Name() == other.root.Name() && slices.Equal(s.intervals, other.intervals)
}

// Degrees returns the notes of one cycle of the scale, degrees 0 to Len()-1.
// Every range over the sequence starts again from the root.
func (s Scale) Degrees() iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for i := range s.intervals {
			if !yield(s.Get(i)) {
				return
			}
		}
	}
}

// Notes returns the degrees 0 to Len()-1 as a slice.
func (s Scale) Notes() []Note {
	return slices.Collect(s.Degrees())
}

// String returns the names of the degrees separated by " - ", e.g.
// "C - D - E - F - G - A - B".
func (s Scale) String() string {
	names := make([]string, 0, len(s.intervals))
	for n := range s.Degrees() {
		names = append(names, n.Name())
	}
	return strings.Join(names, " - ")
}

func (s Scale) GoString() string {
	return fmt.Sprintf("Scale(%s, %v)", s.root.Name(), s.intervals)
}

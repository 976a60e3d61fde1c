package tonic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Note is a pitch, counted in semitones above C in octave 0. C0 = 0, C4 = 48
// and A4 = 57. Negative values are valid and denote octave -1 and below. The
// zero value is C0.
type Note int

const (
	// SemitonesPerOctave is the number of semitones in one octave.
	SemitonesPerOctave = 12

	// midiOffset is the MIDI key number of C0; MIDI starts counting from C-1.
	midiOffset = 12

	// a4 is the tuning reference, A above middle C, at 440 Hz.
	a4 Note = 57

	// maxOctave bounds the octaves ParseNote accepts so that the note value
	// cannot overflow.
	maxOctave = math.MaxInt32 / SemitonesPerOctave
)

var noteNames = []string{
	"C",
	"C#",
	"D",
	"D#",
	"E",
	"F",
	"F#",
	"G",
	"G#",
	"A",
	"A#",
	"B",
}

// naturals maps the note letters to their pitch class.
var naturals = map[rune]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// NoteFromMIDI returns the Note for a MIDI key number (60 = C4).
func NoteFromMIDI(key uint8) Note {
	return Note(int(key) - midiOffset)
}

// ParseNote parses a note name like "C", "c#4", "Db3" or "F-1". The letter is
// case insensitive, '#' or 's' raise it by a semitone and 'b' lowers it. The
// octave is optional and defaults to 0.
func ParseNote(s string) (Note, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidNote)
	}
	pc, ok := naturals[unicode.ToLower(runes[0])]
	if !ok {
		return 0, fmt.Errorf("%w: %q does not start with a note letter", ErrInvalidNote, s)
	}
	i := 1
	for ; i < len(runes); i++ {
		switch runes[i] {
		case '#', 's', 'S':
			pc++
			continue
		case 'b':
			pc--
			continue
		}
		break
	}
	octave := 0
	if rest := string(runes[i:]); rest != "" {
		o, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("%w: %q has an invalid octave %q", ErrInvalidNote, s, rest)
		}
		if o > maxOctave || o < -maxOctave {
			return 0, fmt.Errorf("%w: %q has octave %d, outside %d..%d", ErrInvalidNote, s, o, -maxOctave, maxOctave)
		}
		octave = o
	}
	return Note(octave*SemitonesPerOctave + pc), nil
}

// Octave returns the octave the note is in; C4 is in octave 4 and B3 in
// octave 3.
func (n Note) Octave() int {
	return floorDiv(int(n), SemitonesPerOctave)
}

// PitchClass returns the position of the note within its octave, 0 for C up
// to 11 for B.
func (n Note) PitchClass() int {
	return int(n) - n.Octave()*SemitonesPerOctave
}

// AtOctave returns the note with the same pitch class in the given octave.
func (n Note) AtOctave(octave int) Note {
	return Note(octave*SemitonesPerOctave + n.PitchClass())
}

// Transpose returns the note the given number of semitones higher; negative
// values transpose down.
func (n Note) Transpose(semitones int) Note {
	return n + Note(semitones)
}

// Less reports whether n is lower in pitch than other.
func (n Note) Less(other Note) bool {
	return n < other
}

// Name returns the pitch class name of the note, without the octave, e.g.
// "C#".
func (n Note) Name() string {
	return noteNames[n.PitchClass()]
}

func (n Note) String() string {
	return n.Name() + strconv.Itoa(n.Octave())
}

// MIDIKey returns the MIDI key number of the note. The second value is false
// when the note is outside the MIDI range (C-1 to G9).
func (n Note) MIDIKey() (uint8, bool) {
	k := int(n) + midiOffset
	if k < 0 || k > 127 {
		return 0, false
	}
	return uint8(k), true
}

// Frequency returns the frequency of the note in Hz, in twelve-tone equal
// temperament tuned to A4 = 440 Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n-a4)/SemitonesPerOctave)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

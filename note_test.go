package tonic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/tonic"
)

func TestParseNote(t *testing.T) {
	cases := []struct {
		in   string
		want tonic.Note
	}{
		{"C", 0},
		{"c", 0},
		{"C0", 0},
		{"c#4", 49},
		{"Cs4", 49},
		{"Db3", 37},
		{"B", 11},
		{"Bb2", 34},
		{"bb2", 34},
		{"as4", 58},
		{"A4", 57},
		{"F-1", -7},
		{"Cb0", -1},
		{" G10 ", 127},
	}
	for _, c := range cases {
		got, err := tonic.ParseNote(c.in)
		require.NoError(t, err, "%q", c.in)
		assert.Equal(t, c.want, got, "%q", c.in)
	}
}

func TestParseNoteErrors(t *testing.T) {
	for _, in := range []string{"", "H", "1C", "C#x", "C4.5", "#", "C768614336404564651", "Db-768614336404564651", "C99999999999999999999"} {
		_, err := tonic.ParseNote(in)
		assert.ErrorIs(t, err, tonic.ErrInvalidNote, "%q", in)
	}
}

func TestNoteStringRoundTrip(t *testing.T) {
	for n := tonic.Note(-12); n < 120; n++ {
		got, err := tonic.ParseNote(n.String())
		require.NoError(t, err, "%v", n)
		assert.Equal(t, n, got)
	}
}

func TestNoteOctaveAndPitchClass(t *testing.T) {
	cases := []struct {
		n          tonic.Note
		octave, pc int
		name, str  string
	}{
		{0, 0, 0, "C", "C0"},
		{11, 0, 11, "B", "B0"},
		{49, 4, 1, "C#", "C#4"},
		{-1, -1, 11, "B", "B-1"},
		{-3, -1, 9, "A", "A-1"},
		{-12, -1, 0, "C", "C-1"},
		{-13, -2, 11, "B", "B-2"},
	}
	for _, c := range cases {
		assert.Equal(t, c.octave, c.n.Octave(), "%d", c.n)
		assert.Equal(t, c.pc, c.n.PitchClass(), "%d", c.n)
		assert.Equal(t, c.name, c.n.Name(), "%d", c.n)
		assert.Equal(t, c.str, c.n.String(), "%d", c.n)
	}
}

func TestAtOctave(t *testing.T) {
	assert.Equal(t, tonic.Note(9), tonic.Note(-3).AtOctave(0))
	assert.Equal(t, tonic.Note(57), tonic.Note(9).AtOctave(4))
	assert.Equal(t, tonic.Note(1), tonic.Note(61).AtOctave(0))
}

func TestTransposeAndLess(t *testing.T) {
	n := tonic.Note(7)
	assert.Equal(t, tonic.Note(19), n.Transpose(12))
	assert.Equal(t, tonic.Note(4), n.Transpose(-3))
	assert.True(t, n.Less(n.Transpose(1)))
	assert.False(t, n.Less(n))
	assert.False(t, n.Transpose(1).Less(n))
}

func TestMIDI(t *testing.T) {
	c4 := tonic.NoteFromMIDI(60)
	assert.Equal(t, "C4", c4.String())
	key, ok := c4.MIDIKey()
	require.True(t, ok)
	assert.Equal(t, uint8(60), key)

	key, ok = tonic.Note(-12).MIDIKey()
	require.True(t, ok)
	assert.Equal(t, uint8(0), key)
	key, ok = tonic.Note(115).MIDIKey()
	require.True(t, ok)
	assert.Equal(t, uint8(127), key)

	_, ok = tonic.Note(-13).MIDIKey()
	assert.False(t, ok)
	_, ok = tonic.Note(116).MIDIKey()
	assert.False(t, ok)
}

func TestFrequency(t *testing.T) {
	assert.InDelta(t, 440.0, tonic.NoteFromMIDI(69).Frequency(), 1e-9)
	assert.InDelta(t, 880.0, tonic.Note(69).Frequency(), 1e-9)
	assert.InDelta(t, 261.6256, tonic.NoteFromMIDI(60).Frequency(), 1e-4)
}

package tonic_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/vsariola/tonic"
)

// noteOns reads back a MIDI file and returns the keys of its note on events.
func noteOns(t *testing.T, data []byte) []uint8 {
	t.Helper()
	file, err := smf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, file.Tracks, 1)
	var keys []uint8
	for _, ev := range file.Tracks[0] {
		var ch, key, vel uint8
		if midi.Message(ev.Message).GetNoteOn(&ch, &key, &vel) && vel > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

func TestWriteMIDI(t *testing.T) {
	var buf bytes.Buffer
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	require.NoError(t, tonic.WriteMIDI(&buf, s, tonic.MIDIOptions{}))
	assert.Equal(t, "MThd", buf.String()[:4])
	assert.Equal(t, []uint8{60, 62, 64, 65, 67, 69, 71, 72}, noteOns(t, buf.Bytes()))
}

func TestWriteMIDIDescending(t *testing.T) {
	var buf bytes.Buffer
	s := tonic.MustScale(tonic.Note(9), tonic.Named("pentatonic minor"))
	require.NoError(t, tonic.WriteMIDI(&buf, s, tonic.MIDIOptions{Octave: 3, Descending: true}))
	assert.Equal(t, []uint8{57, 60, 62, 64, 67, 69, 67, 64, 62, 60, 57}, noteOns(t, buf.Bytes()))
}

func TestWriteMIDIOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	err := tonic.WriteMIDI(&buf, s, tonic.MIDIOptions{Octave: 10})
	assert.ErrorIs(t, err, tonic.ErrOutOfRange)
	err = tonic.WriteMIDI(&buf, s, tonic.MIDIOptions{Channel: 16})
	assert.ErrorIs(t, err, tonic.ErrOutOfRange)
}

func TestRun(t *testing.T) {
	s := tonic.MustScale(tonic.Note(0), tonic.Steps(4, 3, 5))
	assert.Equal(t, []tonic.Note{12, 16, 19, 24}, s.Run(1, false))
	assert.Equal(t, []tonic.Note{12, 16, 19, 24, 19, 16, 12}, s.Run(1, true))
}

func TestWriteMIDITempo(t *testing.T) {
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	tests := []struct {
		bpm float64
		ok  bool
	}{
		{0, true},
		{-1, true},
		{4, true},
		{6e7, true},
		{3, false},
		{1e8, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := tonic.WriteMIDI(&buf, s, tonic.MIDIOptions{BPM: tt.bpm})
		if tt.ok {
			assert.NoError(t, err, "bpm %v", tt.bpm)
		} else {
			assert.ErrorIs(t, err, tonic.ErrOutOfRange, "bpm %v", tt.bpm)
		}
	}
}

package tonic

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIOptions control how a scale is written as a Standard MIDI File. Zero
// fields take the defaults: 120 BPM, 960 ticks per quarter note, velocity 100,
// channel 0 (the first channel) and octave 4.
type MIDIOptions struct {
	BPM        float64
	Ticks      uint16 // ticks per quarter note
	Velocity   uint8
	Channel    uint8
	Octave     int
	Descending bool // after going up, come back down to the root
}

const maxTempoMicros = 1<<24 - 1

func (o MIDIOptions) withDefaults() MIDIOptions {
	if o.BPM <= 0 {
		o.BPM = 120
	}
	if o.Ticks == 0 {
		o.Ticks = 960
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	if o.Octave == 0 {
		o.Octave = 4
	}
	return o
}

// Run returns the notes played when rendering the scale: degrees 0 to Len(),
// i.e. one full cycle up including the root of the next cycle, shifted to
// the given octave. If descending, the run continues back down to the root.
func (s Scale) Run(octave int, descending bool) []Note {
	shift := octave * SemitonesPerOctave
	ret := make([]Note, 0, 2*len(s.intervals)+1)
	for i := 0; i <= len(s.intervals); i++ {
		ret = append(ret, s.Get(i).Transpose(shift))
	}
	if descending {
		for i := len(s.intervals) - 1; i >= 0; i-- {
			ret = append(ret, s.Get(i).Transpose(shift))
		}
	}
	return ret
}

// WriteMIDI writes the scale, played as quarter notes, as a single track
// Standard MIDI File.
func WriteMIDI(w io.Writer, s Scale, opts MIDIOptions) error {
	if math.IsNaN(opts.BPM) || math.IsInf(opts.BPM, 0) {
		return fmt.Errorf("%w: tempo %v BPM", ErrOutOfRange, opts.BPM)
	}
	opts = opts.withDefaults()
	// the tempo meta event stores microseconds per quarter note in 24 bits
	if usec := 60e6 / opts.BPM; usec < 1 || usec > maxTempoMicros {
		return fmt.Errorf("%w: tempo %v BPM", ErrOutOfRange, opts.BPM)
	}
	if opts.Channel > 15 {
		return fmt.Errorf("%w: MIDI channel %d", ErrOutOfRange, opts.Channel)
	}
	clock := smf.MetricTicks(opts.Ticks)
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%s %s", s.root.Name(), scaleLabel(s))))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(opts.BPM))
	for _, n := range s.Run(opts.Octave, opts.Descending) {
		key, ok := n.MIDIKey()
		if !ok {
			return fmt.Errorf("%w: %v has no MIDI key", ErrOutOfRange, n)
		}
		tr.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(clock.Ticks4th(), midi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)
	file := smf.New()
	file.TimeFormat = clock
	if err := file.Add(tr); err != nil {
		return fmt.Errorf("could not add track to MIDI file: %w", err)
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("could not write MIDI file: %w", err)
	}
	return nil
}

// scaleLabel is the primary name of the scale, or its steps if it has none.
func scaleLabel(s Scale) string {
	if name, err := s.Name(); err == nil {
		return name
	}
	return fmt.Sprint(s.intervals)
}

package tonic

import (
	"errors"
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
)

type (
	// Synth is a monophonic instrument. Trigger starts a note, cutting the
	// previous one; Release lets the current note die out.
	Synth interface {
		Trigger(note Note)
		Release()
		// Render fills buffer with stereo interleaved samples, so
		// len(buffer)/2 frames.
		Render(buffer []float32) error
	}

	// PlayOptions control how Play renders a scale. Zero fields take the
	// defaults: 120 BPM, octave 4 and notes held for 80% of their length.
	PlayOptions struct {
		BPM        float64
		Octave     int
		Descending bool    // after going up, come back down to the root
		Hold       float64 // fraction of each beat the note is held, 0..1
	}

	// SineSynth is a sine oscillator with a linear attack and release
	// envelope.
	SineSynth struct {
		Gain    float32 // output gain, 0 means 0.3
		Attack  float64 // attack time in seconds, 0 means 5 ms
		Decay   float64 // release time in seconds, 0 means 50 ms
		freq    float64
		phase   float64
		level   float64
		gate    bool
		started bool
	}
)

func (o PlayOptions) withDefaults() PlayOptions {
	if o.BPM <= 0 {
		o.BPM = 120
	}
	if o.Octave == 0 {
		o.Octave = 4
	}
	if !(o.Hold > 0 && o.Hold <= 1) {
		o.Hold = 0.8
	}
	return o
}

// check fails with ErrOutOfRange for a tempo that cannot be rendered: not a
// finite number, slower than 1 BPM or so fast that a beat is shorter than a
// frame.
func (o PlayOptions) check() error {
	if math.IsNaN(o.BPM) || math.IsInf(o.BPM, 0) {
		return fmt.Errorf("%w: tempo %v BPM", ErrOutOfRange, o.BPM)
	}
	if o = o.withDefaults(); o.BPM < 1 || o.FramesPerBeat() < 1 {
		return fmt.Errorf("%w: tempo %v BPM, must be between 1 and %d", ErrOutOfRange, o.BPM, SampleRate*60)
	}
	return nil
}

// FramesPerBeat returns the length of one note of the rendered scale, in
// frames. Play rejects tempos for which it is less than 1.
func (o PlayOptions) FramesPerBeat() int {
	return int(SampleRate * 60 / o.withDefaults().BPM)
}

// Play renders the run of the scale (see Scale.Run) with synth, one note per
// beat, and returns the stereo interleaved buffer. If the peak level exceeds
// 1, the buffer is normalized.
func Play(synth Synth, s Scale, opts PlayOptions) ([]float32, error) {
	if s.Len() == 0 {
		return nil, errors.New("tonic.Play: scale has no steps")
	}
	if err := opts.check(); err != nil {
		return nil, fmt.Errorf("tonic.Play: %w", err)
	}
	opts = opts.withDefaults()
	frames := opts.FramesPerBeat()
	held := int(float64(frames) * opts.Hold)
	run := s.Run(opts.Octave, opts.Descending)
	buffer := make([]float32, len(run)*frames*2)
	for i, n := range run {
		row := buffer[i*frames*2 : (i+1)*frames*2]
		synth.Trigger(n)
		if err := synth.Render(row[:held*2]); err != nil {
			return nil, fmt.Errorf("tonic.Play failed at note %v: %w", n, err)
		}
		synth.Release()
		if err := synth.Render(row[held*2:]); err != nil {
			return nil, fmt.Errorf("tonic.Play failed at note %v: %w", n, err)
		}
	}
	if peak := vek32.Max(vek32.Abs(buffer)); peak > 1 {
		vek32.MulNumber_Inplace(buffer, 1/peak)
	}
	return buffer, nil
}

func (s *SineSynth) Trigger(note Note) {
	s.freq = note.Frequency()
	s.gate = true
	s.started = true
}

func (s *SineSynth) Release() {
	s.gate = false
}

func (s *SineSynth) Render(buffer []float32) error {
	if len(buffer)%2 != 0 {
		return fmt.Errorf("SineSynth.Render: buffer length %d is not stereo", len(buffer))
	}
	if !s.started {
		clear(buffer)
		return nil
	}
	attack, decay := s.Attack, s.Decay
	if attack <= 0 {
		attack = 0.005
	}
	if decay <= 0 {
		decay = 0.05
	}
	up := 1 / (attack * SampleRate)
	down := 1 / (decay * SampleRate)
	step := 2 * math.Pi * s.freq / SampleRate
	for i := 0; i < len(buffer); i += 2 {
		if s.gate {
			s.level = math.Min(1, s.level+up)
		} else {
			s.level = math.Max(0, s.level-down)
		}
		v := float32(s.level * math.Sin(s.phase))
		buffer[i], buffer[i+1] = v, v
		s.phase = math.Mod(s.phase+step, 2*math.Pi)
	}
	gain := s.Gain
	if gain == 0 {
		gain = 0.3
	}
	vek32.MulNumber_Inplace(buffer, gain)
	return nil
}

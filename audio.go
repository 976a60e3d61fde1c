package tonic

import "context"

type (
	// AudioSink consumes stereo interleaved float32 audio at SampleRate.
	AudioSink interface {
		// WriteAudio blocks until the sink has accepted buffer or ctx is
		// done.
		WriteAudio(ctx context.Context, buffer []float32) error
		// Drain blocks until everything written so far has been played or
		// ctx is done.
		Drain(ctx context.Context) error
		Close() error
	}

	// AudioContext opens sinks on an audio device.
	AudioContext interface {
		Output() (AudioSink, error)
	}
)

// SampleRate is the sample rate of all the audio rendered by the package, in
// Hz.
const SampleRate = 44100

// PlayTo renders the scale with synth and plays it on a new sink of audio,
// waiting until it has been played. Playback stops early with ctx.Err() when
// ctx is done.
func PlayTo(ctx context.Context, audio AudioContext, synth Synth, s Scale, opts PlayOptions) error {
	buffer, err := Play(synth, s, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	sink, err := audio.Output()
	if err != nil {
		return err
	}
	defer sink.Close()
	if err := sink.WriteAudio(ctx, buffer); err != nil {
		return err
	}
	return sink.Drain(ctx)
}

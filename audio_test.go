package tonic_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/tonic"
)

// fakeAudio hands out a single fakeSink. A sink with block set only accepts
// audio once ctx is done, like a player that is never read from.
type fakeAudio struct {
	sink    *fakeSink
	outputs int
}

type fakeSink struct {
	block   bool
	written int
	drained bool
	closed  bool
}

func (a *fakeAudio) Output() (tonic.AudioSink, error) {
	a.outputs++
	return a.sink, nil
}

func (s *fakeSink) WriteAudio(ctx context.Context, buffer []float32) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	s.written += len(buffer)
	return nil
}

func (s *fakeSink) Drain(ctx context.Context) error {
	s.drained = true
	return ctx.Err()
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func TestPlayTo(t *testing.T) {
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	opts := tonic.PlayOptions{BPM: 600}
	audio := &fakeAudio{sink: &fakeSink{}}
	require.NoError(t, tonic.PlayTo(context.Background(), audio, &recordingSynth{}, s, opts))
	assert.Equal(t, (s.Len()+1)*opts.FramesPerBeat()*2, audio.sink.written)
	assert.True(t, audio.sink.drained)
	assert.True(t, audio.sink.closed)
}

func TestPlayToCancelled(t *testing.T) {
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	audio := &fakeAudio{sink: &fakeSink{}}
	err := tonic.PlayTo(ctx, audio, &recordingSynth{}, s, tonic.PlayOptions{BPM: 600})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, audio.outputs)
	assert.Equal(t, 0, audio.sink.written)
}

func TestPlayToStopsWhileWriting(t *testing.T) {
	s := tonic.MustScale(tonic.Note(0), tonic.Named("major"))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	audio := &fakeAudio{sink: &fakeSink{block: true}}
	done := make(chan error, 1)
	go func() {
		done <- tonic.PlayTo(ctx, audio, &recordingSynth{}, s, tonic.PlayOptions{BPM: 600})
	}()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("PlayTo did not return after the context was done")
	}
	assert.False(t, audio.sink.drained)
	assert.True(t, audio.sink.closed)
}

//go:build cgo

// Package oto plays tonic audio on the default audio device using
// github.com/ebitengine/oto/v3.
package oto

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/tonic"
)

type (
	// Context is the audio device. Only one Context can exist per process.
	Context struct {
		ctx *oto.Context
	}

	// Output streams audio to one oto player through a pipe.
	Output struct {
		player    *oto.Player
		reader    *io.PipeReader
		writer    *io.PipeWriter
		tmpBuffer []byte
	}
)

// pollInterval is how often Drain checks whether the player is done.
const pollInterval = 10 * time.Millisecond

// NewContext opens the audio device for 16-bit stereo output at
// tonic.SampleRate and waits until it is ready.
func NewContext() (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   tonic.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	c, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{ctx: c}, nil
}

// Output starts a new player. Audio written to it is played as soon as the
// device asks for more.
func (c *Context) Output() (tonic.AudioSink, error) {
	r, w := io.Pipe()
	p := c.ctx.NewPlayer(r)
	p.Play()
	return &Output{player: p, reader: r, writer: w}, nil
}

// WriteAudio blocks until the player has consumed the buffer. If ctx is done
// first, the stream is cut, the player paused and ctx.Err() returned.
func (o *Output) WriteAudio(ctx context.Context, buffer []float32) error {
	// reuse the capacity of tmpBuffer by setting its length to zero
	o.tmpBuffer = FloatBufferTo16BitLE(buffer, o.tmpBuffer[:0])
	stop := context.AfterFunc(ctx, func() {
		o.reader.CloseWithError(ctx.Err())
	})
	defer stop()
	if _, err := o.writer.Write(o.tmpBuffer); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			o.player.Pause()
			return ctxErr
		}
		return fmt.Errorf("cannot write to player: %w", err)
	}
	return nil
}

// Drain ends the stream and waits until the player has played everything.
func (o *Output) Drain(ctx context.Context) error {
	if err := o.writer.Close(); err != nil {
		return fmt.Errorf("cannot close player stream: %w", err)
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for o.player.IsPlaying() {
		select {
		case <-ctx.Done():
			o.player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close disposes of the player.
func (o *Output) Close() error {
	o.writer.Close()
	o.reader.Close()
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

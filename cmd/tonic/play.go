package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vsariola/tonic"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Descending bool
	BPM        float64
	Octave     int
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "play <root> <scale>",
		Short: "Play a scale on the default audio device",
		Long: `Play a scale on the default audio device, from the root up to the root of
the next cycle. Interrupt with Ctrl-C.

Example:
  tonic play A "harmonic minor" --descending --bpm 180`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			playOpts := opts.Config.Audio.PlayOptions()
			if cmd.Flags().Changed("bpm") {
				playOpts.BPM = opts.BPM
			}
			if cmd.Flags().Changed("octave") {
				playOpts.Octave = opts.Octave
			}
			playOpts.Descending = opts.Descending
			audio, err := newAudioContext()
			if err != nil {
				return WrapExitError(ExitCommandError, "could not open audio device", err)
			}
			opts.Logger.Info("playing", "scale", scale.GoString(), "bpm", playOpts.BPM)
			synth := &tonic.SineSynth{Gain: opts.Config.Audio.Gain}
			if err := tonic.PlayTo(cmd.Context(), audio, synth, scale, playOpts); err != nil {
				if errors.Is(err, context.Canceled) {
					opts.Logger.Info("playback interrupted")
					return nil
				}
				return WrapExitError(ExitCommandError, "playback failed", err)
			}
			return nil
		},
	}
	cmd.Args = src.args(0, 0)
	src.addFlags(cmd)

	cmd.Flags().BoolVar(&opts.Descending, "descending", false, "come back down to the root after going up")
	cmd.Flags().Float64Var(&opts.BPM, "bpm", 0, "tempo in beats per minute (default 120)")
	cmd.Flags().IntVar(&opts.Octave, "octave", 0, "octave of the root (default 4)")

	return cmd
}

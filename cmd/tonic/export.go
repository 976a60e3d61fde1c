package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vsariola/tonic"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	MIDI       string
	Wav        string
	Raw        string
	Document   string
	PCM16      bool
	Descending bool
	BPM        float64
	Octave     int
	Safe       bool
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "export <root> <scale>",
		Short: "Write a scale as MIDI, audio or a scale document",
		Long: `Write a scale as a Standard MIDI File, a .wav or .raw audio file, or a scale
document (.yml/.yaml or .json, by extension). The scale is played as
quarter notes from the root up to the root of the next cycle.

Example:
  tonic export C major --midi cmajor.mid --wav cmajor.wav
  tonic export D 2,2,3,2,3 --doc pentatonic.yml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			return runExport(opts, cmd, scale)
		},
	}
	cmd.Args = src.args(0, 0)
	src.addFlags(cmd)

	cmd.Flags().StringVar(&opts.MIDI, "midi", "", "write a Standard MIDI File")
	cmd.Flags().StringVar(&opts.Wav, "wav", "", "write a .wav file")
	cmd.Flags().StringVar(&opts.Raw, "raw", "", "write headerless stereo samples")
	cmd.Flags().StringVar(&opts.Document, "doc", "", "write a scale document (.yml, .yaml or .json)")
	cmd.Flags().BoolVar(&opts.PCM16, "pcm16", false, "write audio as 16-bit signed integers instead of float32")
	cmd.Flags().BoolVar(&opts.Descending, "descending", false, "come back down to the root after going up")
	cmd.Flags().Float64Var(&opts.BPM, "bpm", 0, "tempo in beats per minute (default 120)")
	cmd.Flags().IntVar(&opts.Octave, "octave", 0, "octave of the root (default 4)")
	cmd.Flags().BoolVarP(&opts.Safe, "no-overwrite", "n", false, "never overwrite existing files")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command, scale tonic.Scale) error {
	if opts.MIDI == "" && opts.Wav == "" && opts.Raw == "" && opts.Document == "" {
		return WrapExitError(ExitCommandError, "nothing to export: give at least one of --midi, --wav, --raw or --doc", nil)
	}
	midiOpts := opts.Config.MIDI.MIDIOptions()
	playOpts := opts.Config.Audio.PlayOptions()
	pcm16 := opts.Config.Audio.PCM16
	if cmd.Flags().Changed("bpm") {
		midiOpts.BPM, playOpts.BPM = opts.BPM, opts.BPM
	}
	if cmd.Flags().Changed("octave") {
		midiOpts.Octave, playOpts.Octave = opts.Octave, opts.Octave
	}
	if cmd.Flags().Changed("pcm16") {
		pcm16 = opts.PCM16
	}
	midiOpts.Descending, playOpts.Descending = opts.Descending, opts.Descending

	var written []string
	write := func(path string, contents []byte) error {
		wrote, err := writeFile(path, contents, opts.Safe)
		if err != nil {
			return WrapExitError(ExitCommandError, "export failed", err)
		}
		if !wrote {
			opts.Logger.Info("file unchanged", "path", path)
			return nil
		}
		opts.Logger.Info("wrote file", "path", path, "bytes", len(contents))
		written = append(written, path)
		return nil
	}

	if opts.MIDI != "" {
		var buf bytes.Buffer
		if err := tonic.WriteMIDI(&buf, scale, midiOpts); err != nil {
			return WrapExitError(ExitCommandError, "could not render MIDI", err)
		}
		if err := write(opts.MIDI, buf.Bytes()); err != nil {
			return err
		}
	}
	if opts.Wav != "" || opts.Raw != "" {
		synth := &tonic.SineSynth{Gain: opts.Config.Audio.Gain}
		buffer, err := tonic.Play(synth, scale, playOpts)
		if err != nil {
			return WrapExitError(ExitCommandError, "could not render audio", err)
		}
		if opts.Wav != "" {
			wav, err := tonic.Wav(buffer, pcm16)
			if err != nil {
				return WrapExitError(ExitCommandError, "could not encode .wav", err)
			}
			if err := write(opts.Wav, wav); err != nil {
				return err
			}
		}
		if opts.Raw != "" {
			raw, err := tonic.Raw(buffer, pcm16)
			if err != nil {
				return WrapExitError(ExitCommandError, "could not encode .raw", err)
			}
			if err := write(opts.Raw, raw); err != nil {
				return err
			}
		}
	}
	if opts.Document != "" {
		doc, err := marshalDocument(opts.Document, scale.Document())
		if err != nil {
			return WrapExitError(ExitCommandError, "could not encode scale document", err)
		}
		if err := write(opts.Document, doc); err != nil {
			return err
		}
	}
	return opts.emit(cmd.OutOrStdout(), written, func(w io.Writer) error {
		for _, f := range written {
			if _, err := fmt.Fprintln(w, f); err != nil {
				return err
			}
		}
		return nil
	})
}

func marshalDocument(path string, doc tonic.ScaleDocument) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case ".yml", ".yaml":
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("unknown document extension %q, use .yml, .yaml or .json", filepath.Ext(path))
}

// writeFile writes contents to path, creating the parent directories, and
// reports whether it wrote. Files whose contents would not change are left
// alone.
func writeFile(path string, contents []byte, safe bool) (bool, error) {
	if original, err := os.ReadFile(path); err == nil {
		if bytes.Equal(original, contents) {
			return false, nil
		}
		if safe {
			return false, fmt.Errorf("file %v would be overwritten", path)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return false, fmt.Errorf("could not create output directory %v: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return false, fmt.Errorf("could not write file %v: %w", path, err)
	}
	return true, nil
}

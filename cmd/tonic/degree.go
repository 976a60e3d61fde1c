package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Degree is a scale degree and the note at it.
type Degree struct {
	Index int    `json:"index" yaml:"index"`
	Note  string `json:"note" yaml:"note"`
}

// NewDegreeCommand creates the degree command.
func NewDegreeCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "degree <root> <scale> <index>...",
		Short: "Print the notes at the given degrees",
		Long: `Print the notes at the given degrees. Degree 0 is the root in octave 0 and
degree N, N being the number of steps, one full cycle higher. A negative
degree gives the same note as its absolute value.

Example:
  tonic degree C major 0 2 4 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, rest, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			degrees := make([]Degree, len(rest))
			for i, a := range rest {
				index, err := parseIntArg(a, "degree")
				if err != nil {
					return err
				}
				degrees[i] = Degree{Index: index, Note: scale.Get(index).String()}
			}
			return rootOpts.emit(cmd.OutOrStdout(), degrees, func(w io.Writer) error {
				for _, d := range degrees {
					if _, err := fmt.Fprintf(w, "%d\t%s\n", d.Index, d.Note); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Args = src.args(1, -1)
	src.addFlags(cmd)

	return cmd
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "index <root> <scale> <note>",
		Short: "Print the degree of a note in the scale",
		Long: `Print the degree of a note in the scale, counting up from the root in
octave 0. Fails if the note is not in the scale.

Example:
  tonic index C major G     (prints 4)
  tonic index C major C1    (prints 7)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, rest, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			note, err := parseNoteArg(rest[0])
			if err != nil {
				return err
			}
			index, err := scale.Index(note)
			if err != nil {
				return WrapExitError(ExitFailure, "lookup failed", err)
			}
			d := Degree{Index: index, Note: note.String()}
			return rootOpts.emit(cmd.OutOrStdout(), d, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, d.Index)
				return err
			})
		},
	}
	cmd.Args = src.args(1, 1)
	src.addFlags(cmd)

	return cmd
}

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "transpose <root> <scale> <note> <offset>",
		Short: "Move a note of the scale by a number of degrees",
		Long: `Move a note of the scale by a number of degrees: 1 is a second up, 2 a third
up. Negative offsets have to follow "--" so they are not taken as flags.

Example:
  tonic transpose C major E 2       (prints G0)
  tonic transpose C major G1 -- -1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, rest, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			note, err := parseNoteArg(rest[0])
			if err != nil {
				return err
			}
			offset, err := parseIntArg(rest[1], "offset")
			if err != nil {
				return err
			}
			moved, err := scale.Transpose(note, offset)
			if err != nil {
				return WrapExitError(ExitFailure, "transpose failed", err)
			}
			out := map[string]string{"from": note.String(), "to": moved.String()}
			return rootOpts.emit(cmd.OutOrStdout(), out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, moved)
				return err
			})
		},
	}
	cmd.Args = src.args(2, 2)
	src.addFlags(cmd)

	return cmd
}

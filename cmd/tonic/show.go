package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsariola/tonic"
)

// ScaleInfo is the printable description of a scale.
type ScaleInfo struct {
	Root    string   `json:"root" yaml:"root"`
	Names   []string `json:"names,omitempty" yaml:"names,omitempty,flow"`
	Steps   []int    `json:"steps" yaml:"steps,flow"`
	Degrees []string `json:"degrees" yaml:"degrees,flow"`
}

func describe(s tonic.Scale) ScaleInfo {
	info := ScaleInfo{Root: s.Root().Name(), Steps: s.Intervals()}
	info.Names, _ = s.Names()
	for n := range s.Degrees() {
		info.Degrees = append(info.Degrees, n.Name())
	}
	return info
}

// Title is the root followed by the primary name or the steps, e.g.
// "C major" or "C 2 2 3".
func (i ScaleInfo) Title() string {
	if len(i.Names) > 0 {
		return i.Root + " " + i.Names[0]
	}
	return i.Root + " " + joinInts(i.Steps)
}

func (i ScaleInfo) writeText(w io.Writer) error {
	names := "(none)"
	if len(i.Names) > 0 {
		names = strings.Join(i.Names, ", ")
	}
	_, err := fmt.Fprintf(w, "Scale:    %s\nNames:    %s\nSteps:    %s\nDegrees:  %s\n",
		i.Title(), names, joinInts(i.Steps), strings.Join(i.Degrees, " - "))
	return err
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "show <root> <scale>",
		Short: "Show the degrees and names of a scale",
		Long: `Show the degrees and names of a scale.

Example:
  tonic show C major
  tonic show A "Dorian Mode" --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			info := describe(scale)
			return rootOpts.emit(cmd.OutOrStdout(), info, info.writeText)
		},
	}
	cmd.Args = src.args(0, 0)
	src.addFlags(cmd)

	return cmd
}

// NewNamesCommand creates the names command.
func NewNamesCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "names <root> <scale>",
		Short: "List all registered names of the steps of a scale",
		Long: `List all registered names of the steps of a scale, primary name first.
Fails if the steps have no name.

Example:
  tonic names C 2,2,1,2,2,2,1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			names, err := scale.Names()
			if err != nil {
				return WrapExitError(ExitFailure, "scale has no name", err)
			}
			return rootOpts.emit(cmd.OutOrStdout(), names, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
				return err
			})
		},
	}
	cmd.Args = src.args(0, 0)
	src.addFlags(cmd)

	return cmd
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = fmt.Sprint(x)
	}
	return strings.Join(s, " ")
}

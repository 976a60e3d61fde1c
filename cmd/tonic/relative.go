package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRelativeCommand creates the relative command.
func NewRelativeCommand(rootOpts *RootOptions) *cobra.Command {
	src := &scaleSource{}

	cmd := &cobra.Command{
		Use:   "relative <root> <scale>",
		Short: "Show the relative minor of a major scale or vice versa",
		Long: `Show the relative minor of a major scale or the relative major of a minor
scale. Other scales have no relative; "none" is printed and the command
still succeeds.

Example:
  tonic relative C major     (A minor)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _, err := src.resolve(rootOpts, args)
			if err != nil {
				return err
			}
			rel, ok := scale.Relative()
			if !ok {
				rootOpts.Logger.Debug("no relative scale", "scale", scale.GoString())
				return rootOpts.emit(cmd.OutOrStdout(), nil, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, "none")
					return err
				})
			}
			info := describe(rel)
			return rootOpts.emit(cmd.OutOrStdout(), info, info.writeText)
		},
	}
	cmd.Args = src.args(0, 0)
	src.addFlags(cmd)

	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsariola/tonic"
)

// scaleSource reads the scale of a command either from its first two
// arguments or from the --file flag.
type scaleSource struct {
	File string
}

func (s *scaleSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.File, "file", "f", "", "read the scale from a YAML or JSON scale document instead of the arguments")
}

// args returns a cobra argument validator for a command taking a scale
// followed by between min and max further arguments; max < 0 means no limit.
func (s *scaleSource) args(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		n := len(args)
		if s.File == "" {
			n -= 2
		}
		if n < min || (max >= 0 && n > max) {
			return WrapExitError(ExitCommandError, fmt.Sprintf("wrong number of arguments for %v", cmd.UseLine()), nil)
		}
		return nil
	}
}

// resolve builds the scale and returns the remaining arguments.
func (s *scaleSource) resolve(opts *RootOptions, args []string) (tonic.Scale, []string, error) {
	if s.File != "" {
		data, err := os.ReadFile(s.File)
		if err != nil {
			return tonic.Scale{}, nil, WrapExitError(ExitCommandError, "could not read scale file", err)
		}
		scale, err := tonic.ParseScale(data)
		if err != nil {
			return tonic.Scale{}, nil, WrapExitError(exitCodeOf(err), "invalid scale file "+s.File, err)
		}
		opts.Logger.Debug("scale loaded", "file", s.File, "scale", scale.GoString())
		return scale, args, nil
	}
	root, err := tonic.ParseNote(args[0])
	if err != nil {
		return tonic.Scale{}, nil, WrapExitError(ExitCommandError, "invalid root", err)
	}
	spec, err := parseSpecifier(args[1])
	if err != nil {
		return tonic.Scale{}, nil, WrapExitError(ExitCommandError, "invalid steps", err)
	}
	scale, err := tonic.NewScale(root, spec)
	if err != nil {
		return tonic.Scale{}, nil, WrapExitError(exitCodeOf(err), "could not build scale", err)
	}
	opts.Logger.Debug("scale resolved", "root", args[0], "scale", args[1], "steps", scale.Intervals())
	return scale, args[2:], nil
}

// parseSpecifier treats arguments starting with a digit as a comma separated
// list of steps and everything else as a scale name.
func parseSpecifier(arg string) (tonic.Specifier, error) {
	if arg == "" || arg[0] < '0' || arg[0] > '9' {
		return tonic.Named(arg), nil
	}
	fields := strings.Split(arg, ",")
	steps := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return tonic.Specifier{}, fmt.Errorf("step %q is not a number", f)
		}
		steps[i] = v
	}
	return tonic.Steps(steps...), nil
}

func parseNoteArg(arg string) (tonic.Note, error) {
	n, err := tonic.ParseNote(arg)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid note", err)
	}
	return n, nil
}

func parseIntArg(arg, what string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid "+what, err)
	}
	return v, nil
}

// exitCodeOf tells lookup failures apart from malformed input.
func exitCodeOf(err error) int {
	switch {
	case errors.Is(err, tonic.ErrNameNotFound),
		errors.Is(err, tonic.ErrPatternNotFound),
		errors.Is(err, tonic.ErrNotInScale):
		return ExitFailure
	}
	return ExitCommandError
}

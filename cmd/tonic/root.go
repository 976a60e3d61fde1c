package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds the global flags and the state shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	Template   string
	ConfigPath string

	Config *Config
	Logger *slog.Logger
}

// ValidFormats are the accepted values of --format.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the tonic command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tonic",
		Short: "Explore rooted musical scales",
		Long: `tonic builds musical scales from a root note and a scale name or a list of
steps, and looks up, transposes and renders their degrees.

A scale is given as two arguments, the root and the scale:
  tonic show C major
  tonic show "F#" "harmonic minor"
  tonic show D 2,1,2,2,2,1,2     (custom steps, in semitones)
or read from a YAML/JSON scale document with --file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Template, "template", "", "render the output with a Go template (sprig functions available)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML file with default settings")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewNamesCommand(opts))
	cmd.AddCommand(NewDegreeCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewTransposeCommand(opts))
	cmd.AddCommand(NewRelativeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// setup loads the config file, lets it fill in the flags the user did not
// give and configures logging.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Config = &Config{}
	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --config", err)
		}
		o.Config = cfg
	}
	if f := cmd.Flag("format"); f != nil && !f.Changed && o.Config.Format != "" {
		o.Format = o.Config.Format
	}
	if f := cmd.Flag("template"); f != nil && !f.Changed && o.Config.Template != "" {
		o.Template = o.Config.Template
	}
	if !slices.Contains(ValidFormats, o.Format) {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats), nil)
	}
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.Logger.Debug("options", "format", o.Format, "config", o.ConfigPath)
	return nil
}

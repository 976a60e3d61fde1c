package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vsariola/tonic"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered scales",
		Long: `List the registered scale names and their steps, in registration order.
When several names share the same steps, the first one is the primary name.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := tonic.RegistryDocument()
			return rootOpts.emit(cmd.OutOrStdout(), entries, func(w io.Writer) error {
				caser := cases.Title(language.English)
				for _, e := range entries {
					if _, err := fmt.Fprintf(w, "%-16s %s\n", caser.String(e.Name), joinInts(e.Steps)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	return cmd
}

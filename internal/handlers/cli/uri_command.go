package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewURICommand creates the 'uri' subcommand.
func NewURICommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uri <alias> <subdomain>",
		Short: "Resolve the URI of an alias for a subdomain.",
		Long:  `Replaces the SUBDOMAIN placeholder in the alias URI and prints the result.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := state.svc.ResolveURI(args[0], args[1])
			if err != nil {
				return explainUnknownAlias(cmd, state.svc, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}
}

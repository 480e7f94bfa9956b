package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewOptionsCommand creates the 'options' subcommand.
func NewOptionsCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options <alias> <command>",
		Short: "Print the options forced onto a command for an alias.",
		Long: `Prints the forced options as command line flags, e.g. "--simulate=1".
Prints an empty line when the command has no overrides for the alias.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := state.svc.CommandOptions(args[0], args[1])
			if err != nil {
				return explainUnknownAlias(cmd, state.svc, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatOptions(opts))
			return nil
		},
	}
}

// formatOptions renders options as sorted "--name=value" flags.
func formatOptions(opts map[string]string) string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flags := make([]string, 0, len(keys))
	for _, k := range keys {
		flags = append(flags, fmt.Sprintf("--%s=%s", k, opts[k]))
	}
	return strings.Join(flags, " ")
}

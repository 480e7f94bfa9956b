package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [alias]",
		Short: "Show a single alias.",
		Long: `Prints the parent site, URI template and forced command options of an alias.
Without an argument, an alias is picked interactively (fzf if available).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, state)
		},
	}
}

func runShowCmd(cmd *cobra.Command, args []string, state *app) error {
	out := cmd.OutOrStdout()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		picked, err := pickAlias(state.svc.Names(), cmd.InOrStdin(), cmd.ErrOrStderr())
		if errors.Is(err, ErrFZFCancelled) || errors.Is(err, ErrNoSelection) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.InfoColor("No alias selected."))
			return nil
		}
		if err != nil {
			return err
		}
		name = picked
	}

	record, err := state.svc.Lookup(name)
	if err != nil {
		return explainUnknownAlias(cmd, state.svc, err)
	}

	fmt.Fprintln(out, ui.AliasNameColor(record.Name))
	fmt.Fprintf(out, "  %s %s\n", ui.FieldColor("parent:"), record.Parent)
	fmt.Fprintf(out, "  %s    %s\n", ui.FieldColor("uri:"), ui.URIColor(record.URI))

	if len(record.CommandOverrides) == 0 {
		return nil
	}

	fmt.Fprintf(out, "  %s\n", ui.FieldColor("command-specific:"))
	commands := make([]string, 0, len(record.CommandOverrides))
	for c := range record.CommandOverrides {
		commands = append(commands, c)
	}
	sort.Strings(commands)
	for _, c := range commands {
		fmt.Fprintf(out, "    %s %s\n", c+":", ui.OptionColor(formatOptions(record.CommandOverrides[c])))
	}
	return nil
}

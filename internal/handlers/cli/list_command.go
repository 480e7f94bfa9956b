package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the aliases in the definition.",
		Long:  `Displays every alias with its parent site, URI template and overridden commands.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, state)
		},
	}
}

func runListCmd(cmd *cobra.Command, state *app) error {
	out := cmd.OutOrStdout()
	records := state.svc.Records()

	if len(records) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases defined in %s.", state.svc.Source())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (from %s):", state.svc.Source())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Parent", "URI", "Overridden Commands"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, r := range records {
		commands := make([]string, 0, len(r.CommandOverrides))
		for c := range r.CommandOverrides {
			commands = append(commands, c)
		}
		sort.Strings(commands)
		table.Append([]string{r.Name, r.Parent, r.URI, strings.Join(commands, ", ")})
	}
	table.Render()
	return nil
}

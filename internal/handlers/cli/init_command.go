package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/sitealias/internal/adapters/definitions"
	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
	"github.com/AntonioJCosta/sitealias/internal/repositories/definitionfile"
	"github.com/spf13/cobra"
)

type initCommandFlags struct {
	account string
	domain  string
	output  string
	force   bool
}

// NewInitCommand creates the 'init' subcommand.
func NewInitCommand(state *app) *cobra.Command {
	flags := &initCommandFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the canonical dev/stage/prod definition for an account.",
		Long: `Generates dev, stage and prod aliases for a hosted account. Production
forces sql-sync and rsync to simulate. The definition is written to --output,
the configured definition file, or $HOME/.sitealias/aliases.yaml, in that order.
Use "--output -" to print it instead.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipServiceAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitCmd(cmd, flags, state)
		},
	}

	cmd.Flags().StringVar(&flags.account, "account", "", "Hosting account name used as the parent prefix.")
	cmd.Flags().StringVar(&flags.domain, "domain", "", "Base domain appended to every URI.")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", `Destination file, or "-" for stdout.`)
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing definition file.")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func runInitCmd(cmd *cobra.Command, flags *initCommandFlags, state *app) error {
	if strings.TrimSpace(flags.account) == "" || strings.TrimSpace(flags.domain) == "" {
		return fmt.Errorf("--account and --domain must not be empty")
	}
	records := definitions.Canonical(flags.account, flags.domain)

	// Reject input that would produce a definition the loader refuses.
	if _, err := alias.NewTable(records); err != nil {
		return fmt.Errorf("could not build definition: %w", err)
	}

	data, err := definitions.Marshal(records)
	if err != nil {
		return err
	}

	if flags.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := initTargetPath(flags, state)
	if err != nil {
		return err
	}

	written, err := definitionfile.NewWriter(path).Write(data, flags.force)
	if err != nil {
		return fmt.Errorf("could not write definition: %w", err)
	}
	if !written {
		fmt.Fprintln(cmd.OutOrStdout(), ui.WarningColor(fmt.Sprintf("%s already exists. Use --force to overwrite it.", path)))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Wrote %d aliases to %s.", len(records), path)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Try it with:"))
	fmt.Fprintln(cmd.OutOrStdout(), ui.CodeColor(fmt.Sprintf("   sitealias --file %s list", path)))
	return nil
}

func initTargetPath(flags *initCommandFlags, state *app) (string, error) {
	if flags.output != "" {
		return flags.output, nil
	}
	if state.cfg != nil && state.cfg.File != "" {
		return state.cfg.File, nil
	}
	return definitionfile.NewDefaultFileFinder().Find()
}

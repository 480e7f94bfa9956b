package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/sitealias/internal/config"
	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/core/ports"
	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
	"github.com/AntonioJCosta/sitealias/internal/logging"
	"github.com/spf13/cobra"
)

// skipServiceAnnotation marks commands that run without a loaded alias table.
const skipServiceAnnotation = "sitealias/skip-service"

// ServiceFactory builds the resolution service for the resolved configuration.
type ServiceFactory func(cfg *config.Config) (ports.AliasResolutionService, error)

// app carries state resolved by the root command to its subcommands.
type app struct {
	cfg *config.Config
	svc ports.AliasResolutionService
}

type rootFlags struct {
	configPath string
	file       string
	embedded   bool
	logLevel   string
}

// NewRootCommand creates the sitealias command tree.
func NewRootCommand(version string, newService ServiceFactory) *cobra.Command {
	if newService == nil {
		panic("service factory cannot be nil")
	}

	state := &app{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "sitealias",
		Short: "sitealias resolves deployment environment aliases.",
		Long: `sitealias loads a static definition of environment aliases (dev, stage, prod)
and answers queries about them: target URIs, parent sites and the options
forced onto remote commands for each environment.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if isBuiltinCommand(cmd) {
				return nil
			}
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			state.cfg = cfg
			logging.Init(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

			if cmd.Annotations[skipServiceAnnotation] == "true" {
				return nil
			}
			svc, err := newService(cfg)
			if err != nil {
				return fmt.Errorf("could not load aliases: %w", err)
			}
			state.svc = svc
			return nil
		},
	}

	defaultConfig, _ := config.DefaultPath()
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfig, "Path to the sitealias config file.")
	rootCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "Path to the alias definition file (default $HOME/.sitealias/aliases.yaml).")
	rootCmd.PersistentFlags().BoolVar(&flags.embedded, "embedded", false, "Use the compiled-in canonical alias definition.")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error.")

	rootCmd.AddCommand(NewListCommand(state))
	rootCmd.AddCommand(NewShowCommand(state))
	rootCmd.AddCommand(NewURICommand(state))
	rootCmd.AddCommand(NewOptionsCommand(state))
	rootCmd.AddCommand(NewInitCommand(state))

	return rootCmd
}

// isBuiltinCommand reports whether cmd is one of cobra's help or completion
// commands, which must work before any definition exists.
func isBuiltinCommand(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// resolveConfig layers explicitly set flags over the loaded configuration.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}

	if cmd.Flags().Changed("file") {
		cfg.File = flags.file
		cfg.Embedded = false
	}
	if cmd.Flags().Changed("embedded") {
		cfg.Embedded = flags.embedded
		if flags.embedded {
			cfg.File = ""
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// explainUnknownAlias prints the available aliases when err is an unknown-alias error.
// The error is returned unchanged so callers can return it directly.
func explainUnknownAlias(cmd *cobra.Command, svc ports.AliasResolutionService, err error) error {
	if errors.Is(err, alias.ErrUnknownAlias) {
		names := svc.Names()
		if len(names) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("No aliases are defined in "+svc.Source()+"."))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("Available aliases:"))
			for _, name := range names {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ui.AliasNameColor(name))
			}
		}
	}
	return err
}

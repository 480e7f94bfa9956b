package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/sitealias/internal/adapters/definitions"
	"github.com/AntonioJCosta/sitealias/internal/config"
	"github.com/AntonioJCosta/sitealias/internal/core/ports"
	"github.com/AntonioJCosta/sitealias/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/sitealias/internal/handlers/cli"
	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
	"github.com/AntonioJCosta/sitealias/internal/repositories/definitionfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	finder := definitionfile.NewDefaultFileFinder()

	newService := func(cfg *config.Config) (ports.AliasResolutionService, error) {
		src, err := definitions.SelectSource(cfg.File, cfg.Embedded, finder)
		if err != nil {
			return nil, err
		}
		return aliasresolution.NewService(src)
	}

	rootCmd := cli.NewRootCommand(Version, newService)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

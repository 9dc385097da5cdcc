// Package cli implements the advisorctl command line tool: offline report
// generation and catalog maintenance without a running server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/config"
	"github.com/osse101/garden-advisor/internal/logger"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "advisorctl",
		Short: "Garden Growth Advisor command line tool",
		Long: `advisorctl generates strategy reports and inspects the item catalog
without a running server. Reports come from the deterministic rule
engine; augmentation is a server-side concern.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statusCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.NewConfig("ERROR", cfg.LogFormat))
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", cfg.CatalogPath, err)
	}
	return cat, nil
}

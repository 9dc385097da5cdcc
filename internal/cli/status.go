package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/garden-advisor/internal/style"
)

type statusOutput struct {
	CatalogPath            string   `json:"catalogPath"`
	CatalogItems           int      `json:"catalogItems"`
	AugmentationConfigured bool     `json:"augmentationConfigured"`
	AugmentationModel      string   `json:"augmentationModel,omitempty"`
	RecommendedSource      string   `json:"recommendedSource"`
	Styles                 []string `json:"styles"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show engine configuration and augmentation availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := statusOutput{
			CatalogPath:            cfg.CatalogPath,
			CatalogItems:           cat.Len(),
			AugmentationConfigured: cfg.AugmentationEnabled(),
			RecommendedSource:      "rule_engine",
			Styles:                 style.Names(),
		}
		if out.AugmentationConfigured {
			out.AugmentationModel = cfg.GeminiModel
			out.RecommendedSource = "augmented"
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

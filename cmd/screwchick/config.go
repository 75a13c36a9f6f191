package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/screwchick/internal/config"
	"github.com/vovakirdan/screwchick/internal/games/screwchick"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables",
	Long: `Print the tunables a game would start with, after the config search
order and the difficulty preset are applied. The output is valid YAML and can
be saved as ~/.arcade/configs/screwchick.yaml.

Examples:
  screwchick config
  screwchick config --difficulty hard > ~/.arcade/configs/screwchick.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := screwchick.LoadConfig()
	if err != nil {
		logger.Warn("using default tunables", "error", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

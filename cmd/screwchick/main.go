// screwchick plays Screw Chick in the terminal.
//
// Usage:
//
//	screwchick play          - Play in this terminal
//	screwchick serve         - Start SSH server for remote play
//	screwchick scores        - Show high scores
//	screwchick config        - Print the effective tunables as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--palette <name>      - green or mono
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/screwchick/internal/config"
	"github.com/vovakirdan/screwchick/internal/games/screwchick"
	"github.com/vovakirdan/screwchick/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPalette    string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "screwchick"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "screwchick",
	Short: "Screw Chick - sort screws into boxes in your terminal",
	Long: `Screw Chick is a grid arcade game. Steer the chick, pick up screws
that trail behind you and deliver them to the matching box. Every pickup
speeds you up; a good delivery calms things down again.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective tunables

Examples:
  screwchick play
  screwchick play --difficulty hard --seed 42
  screwchick serve --ssh :2222
  screwchick scores --interactive`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "green", "Colour palette: green, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags shared by every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	screwchick.SetConfigPath(flagConfig)
	screwchick.SetDifficultyPreset(preset)
	return nil
}

// palette resolves --palette.
func palette() (tui.Palette, error) {
	return tui.PaletteByName(flagPalette)
}

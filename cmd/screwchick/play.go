package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/screwchick/internal/audio/speakerout"
	"github.com/vovakirdan/screwchick/internal/core"
	"github.com/vovakirdan/screwchick/internal/games/screwchick"
	"github.com/vovakirdan/screwchick/internal/platform/tui"
	"github.com/vovakirdan/screwchick/internal/registry"
	"github.com/vovakirdan/screwchick/internal/storage"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Screw Chick",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD   - Steer
  Space/Enter   - Start (title), return to title (game over)
  R             - Return to title (game over)
  P             - Pause
  Esc/B         - Leave (paused or game over)
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Config speed
  hard   - Faster base speed
  fixed  - Speed never changes

Examples:
  screwchick play
  screwchick play --difficulty easy
  screwchick play --seed 7 --mute
  screwchick play --config ./my-screwchick.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Cue volume between 0 and 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", defaultGameLogPath(), "Where to log while playing (empty discards)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := screwchick.LoadConfig(); err != nil {
		logger.Warn("using default tunables", "error", err)
	}

	pal, err := palette()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(screwchick.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameLog, closeLog, err := openGameLog(flagLogFile, logger)
	if err != nil {
		logger.Warn("could not open log file, game logs are discarded", "path", flagLogFile, "error", err)
	}
	defer closeLog()

	player := speakerout.New(speakerout.Options{
		Mute:   flagMute,
		Volume: flagVolume,
		Logger: gameLog,
	})
	defer speakerout.Close(player)

	if err := tui.Run(game, cfg, tui.Options{
		Store:   store,
		Audio:   player,
		Palette: pal,
		Logger:  gameLog,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

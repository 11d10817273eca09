package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antonvlasov/swoop/internal/config"
	"github.com/antonvlasov/swoop/internal/core"
	"github.com/antonvlasov/swoop/internal/platform/tui"
	"github.com/antonvlasov/swoop/internal/sim"
	"github.com/antonvlasov/swoop/internal/storage"
)

var (
	flagConfig  string
	flagPreset  string
	flagBooster bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a Swoop session in the current terminal.

Controls:
  Space/Up   - Flap (starts the run on the title screen)
  P/Esc      - Pause
  C          - Continue (after game over, while the budget lasts)
  R          - Restart (after game over)
  B          - Records browser (from pause or game over)
  Q/Ctrl+C   - Quit

Presets:
  relaxed - More lives, longer grace window, smaller hitbox
  classic - Default tuning
  brutal  - One life, no continues

Examples:
  swoop play
  swoop play --preset relaxed
  swoop play --config ./my-swoop.yaml
  swoop play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Gameplay preset: relaxed, classic, brutal")
	playCmd.Flags().BoolVar(&flagBooster, "heart-booster", false, "Raise the life cap to the boosted maximum")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&gameCfg, config.Preset(flagPreset))
	}

	// Get terminal size for the initial projection
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
		Profile:  flagProfile,
	}

	// Open record storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var gateway sim.Gateway
	if store != nil {
		gateway = store.GatewayFor(flagProfile)
	}
	game := sim.New(gameCfg, seed, gateway, nil, sim.Options{HeartBooster: flagBooster})

	runErr := tui.Run(game, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

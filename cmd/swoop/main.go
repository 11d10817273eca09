// swoop is a terminal flappy-style arcade game with lives, continues and
// score-driven difficulty.
//
// Usage:
//
//	swoop play               - Play in the current terminal
//	swoop records            - Browse run records
//	swoop serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.swoop/records.db)
//	--profile <name>   - Player profile the records belong to
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swoop",
	Short: "Swoop - a forgiving flappy arcade in your terminal",
	Long: `Swoop is a terminal arcade game: tap to stay airborne, slip through
the gaps, and survive as the obstacles tighten with your score. Lives,
short invulnerability after a hit, and a continue budget keep runs going.

Available commands:
  play      - Play in the current terminal
  records   - Browse your run records
  serve     - Start SSH server for remote play

Examples:
  swoop play
  swoop play --preset brutal
  swoop records
  swoop serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.swoop/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Player profile name")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

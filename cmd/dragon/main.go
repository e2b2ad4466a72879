// dragon is Flappy Dragon for the terminal.
//
// Usage:
//
//	dragon play                 - Play in the local terminal
//	dragon serve                - Start SSH server for remote play
//	dragon shells               - List available terminal shells
//	dragon recordings           - List or browse recorded sessions
//	dragon replay <id>          - Re-simulate a recorded session
//	dragon config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set render rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set journal path (default: ~/.dragon/journal.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// Every global flag can also be set through a DRAGON_* environment variable
// (DRAGON_DB, DRAGON_LOG_LEVEL, ...), read from ./.env when present.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/journal"

	// Import shells to register them
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/tcellui"
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - fly through the gaps in your terminal",
	Long: `Flappy Dragon is a one-button arcade game for the terminal.
Flap to climb, fall under gravity, and thread the dragon through the
gaps of walls that scroll in from the right. Every wall passed scores a
point and makes the next one faster and tighter.

Available commands:
  play        - Play in the local terminal
  serve       - Start SSH server for remote play
  shells      - List available terminal shells
  recordings  - List, browse or delete recorded sessions
  replay      - Re-simulate a recorded session
  config      - Print the effective configuration

Examples:
  dragon play
  dragon play --shell tcell --difficulty hard
  dragon serve --ssh :2222
  dragon recordings --browse
  dragon replay 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnv(cmd.Root(), envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", journal.DefaultPath, "Path to session journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellsCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session",
	Long: `Rebuild the game a session was recorded with and feed it the same
input, without a terminal. Prints the score of every run.

Examples:
  dragon replay 12`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q", args[0])
	}

	store, err := journal.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer store.Close()

	rec, err := store.Load(id)
	if err != nil {
		return err
	}

	res, err := journal.Replay(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Recording #%d (%s shell, seed %d, %d frames)\n", rec.ID, rec.Shell, rec.Seed, res.Frames)
	if rec.Truncated {
		fmt.Println("Note: recording was truncated; later input is missing.")
	}
	fmt.Println()

	if len(res.Runs) == 0 {
		fmt.Println("No runs ended.")
	} else {
		fmt.Printf("  %-4s  %s\n", "Run", "Score")
		fmt.Printf("  %-4s  %s\n", "---", "-----")
		best := 0
		for i, score := range res.Runs {
			fmt.Printf("  %-4d  %d\n", i+1, score)
			best = max(best, score)
		}
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}

	fmt.Printf("Final: %s, score %d, %d logical frames\n", res.FinalMode, res.FinalScore, res.Ticks)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/journal"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagRecordingsLimit  int
	flagRecordingsDelete int64
	flagRecordingsBrowse bool
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "List recorded sessions",
	Long: `Display the most recent sessions stored in the journal.

Examples:
  dragon recordings
  dragon recordings --limit 50
  dragon recordings --browse
  dragon recordings --delete 12`,
	Args: cobra.NoArgs,
	RunE: runRecordings,
}

func init() {
	recordingsCmd.Flags().IntVar(&flagRecordingsLimit, "limit", 20, "Number of recordings to list")
	recordingsCmd.Flags().Int64Var(&flagRecordingsDelete, "delete", 0, "Delete the recording with this ID")
	recordingsCmd.Flags().BoolVar(&flagRecordingsBrowse, "browse", false, "Browse, replay and delete interactively")
}

func runRecordings(_ *cobra.Command, _ []string) error {
	store, err := journal.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer store.Close()

	if flagRecordingsDelete != 0 {
		if err := store.Delete(flagRecordingsDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted recording #%d\n", flagRecordingsDelete)
		return nil
	}

	if flagRecordingsBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRecordings(store, width, height)
	}

	list, err := store.List(flagRecordingsLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recorded sessions")
	fmt.Println()

	if len(list) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dragon play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-20s  %-8s  %s\n", "ID", "Shell", "Seed", "Frames", "Date")
	fmt.Printf("  %-6s  %-6s  %-20s  %-8s  %s\n", "--", "-----", "----", "------", "----")

	for _, r := range list {
		frames := fmt.Sprintf("%d", r.FrameCount)
		if r.Truncated {
			frames += "+"
		}
		fmt.Printf("  %-6d  %-6s  %-20d  %-8s  %s\n",
			r.ID, r.Shell, r.Seed, frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'dragon replay <id>' to re-simulate a session.")
	return nil
}

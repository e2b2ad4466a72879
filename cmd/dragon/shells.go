package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

var shellsCmd = &cobra.Command{
	Use:   "shells",
	Short: "List available terminal shells",
	Long:  `Shows every shell that can run a local game with 'dragon play --shell <name>'.`,
	Args:  cobra.NoArgs,
	Run:   runShells,
}

func runShells(_ *cobra.Command, _ []string) {
	shells := registry.List()

	if len(shells) == 0 {
		fmt.Println("No shells available.")
		return
	}

	fmt.Println("Available shells:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range shells {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range shells {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'dragon play --shell <name>' to use one.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration 'dragon play' would use, after the config
search path and --difficulty are applied. Redirect it to a file to get
a starting point for ~/.dragon/configs/dragon.yaml.

Examples:
  dragon config
  dragon config --difficulty hard > ~/.dragon/configs/dragon.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

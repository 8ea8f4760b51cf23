package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the configuration the same way play does (--config, then
~/.flappy/config.yaml, then ./configs/flappy.yaml, then built-in defaults),
applies command line overrides and prints the result.

Redirect the output to a file to start a custom config:
  flappy config > configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

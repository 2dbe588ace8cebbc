package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration blockfall would run with, after the search
order (--config, ~/.blockfall/configs/blockfall.yaml,
./configs/blockfall.yaml, built-in defaults) and --difficulty are applied.

The output is a complete blockfall.yaml and can be saved and edited.

Examples:
  blockfall config
  blockfall config --difficulty hard
  blockfall config > ~/.blockfall/configs/blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	props, err := loadProperties()
	if err != nil {
		return err
	}
	data, err := props.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

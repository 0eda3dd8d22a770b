package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, after applying the
config file search order and flag overrides.

Config search order:
  --config <path>
  ~/.tui-snake/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config
  snake config --tick-ms 80
  snake config --defaults > ~/.tui-snake/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	grid := cfg.Grid()
	fmt.Fprintf(out, "# grid: %dx%d cells\n", grid.Cols, grid.Rows)
	_, err = out.Write(data)
	return err
}

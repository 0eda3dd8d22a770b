// snake is the classic Snake arcade game played in the terminal.
//
// Usage:
//
//	snake                    - Play
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--fps <rate>       - Override render frame rate
//	--tick-ms <ms>     - Override simulation tick duration
//	--log-file <path>  - Write logs to this file (default: no logging)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagFPS     int
	flagTickMs  int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Guide the snake to the food, grow longer, and don't hit the walls
or your own tail.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter            - Restart (after game over)
  Esc/Q/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --tick-ms 80 --log-file /tmp/snake.log --debug
  snake --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTickMs, "tick-ms", 0, "Milliseconds per snake move (0 = from config)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagTickMs != 0 {
		cfg.Timing.TickMs = flagTickMs
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Fail fast if the board cannot be shown at all.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := tui.MinTerminalSize(cfg.Grid())
		if w < needW || h < needH {
			return fmt.Errorf("terminal is %dx%d, the %dx%d board needs at least %dx%d",
				w, h, cfg.Grid().Cols, cfg.Grid().Rows, needW, needH)
		}
	} else {
		logger.Warn("could not read terminal size", "error", termErr)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("config loaded", "path", flagConfig, "seed", seed)

	game := snake.New(cfg.Runtime(seed))
	if err := tui.Run(game, cfg.Timing.FPS, logger); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

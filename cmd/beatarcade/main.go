// beatarcade is a terminal rhythm arcade: dodge obstacles that move to the
// beat of the song.
//
// Usage:
//
//	beatarcade list              - List available levels
//	beatarcade play <level>      - Play a level
//	beatarcade menu              - Pick levels interactively
//	beatarcade serve             - Start SSH server for remote play
//	beatarcade shade <level>     - Print the danger map of a level at a beat
//	beatarcade check <path>      - Validate level files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible camera shake
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/levels"
	"github.com/vovakirdan/beat-arcade/internal/registry"

	// Import levels to register them
	_ "github.com/vovakirdan/beat-arcade/internal/levels/pulse"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagNoAudio    bool
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatarcade",
	Short: "Beat Arcade - dodge to the beat in your terminal",
	Long: `Beat Arcade is a terminal rhythm game. Lasers, bombs and spinning
blocks move to the beat of the song; survive until the music ends.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  shade    - Print where a level is dangerous at a given beat
  check    - Validate level files

Examples:
  beatarcade list
  beatarcade play pulse
  beatarcade play --level-file ./mylevel.yaml
  beatarcade menu --difficulty easy
  beatarcade serve --ssh :2222
  beatarcade shade warmup --beat 12`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagLevelsDir == "" {
			return nil
		}
		return registerDir(flagLevelsDir)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for camera shake (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands log nowhere by default)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Never play songs, follow a silent clock instead")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files to register")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shadeCmd)
	rootCmd.AddCommand(checkCmd)
}

// registerDir loads every level file in dir into the registry.
func registerDir(dir string) error {
	defs, err := levels.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := registry.Add(def.Meta.ID, def.Meta.Name, def.Factory()); err != nil {
			return err
		}
	}
	return nil
}

// newLogger builds the logger for a command. TUI commands own the terminal,
// so unless a log file is given they log nowhere; fallback is used otherwise.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "beatarcade",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig reads the config file and applies the difficulty flag.
func loadGameConfig() (config.GameConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/platform/tui"
	"github.com/vovakirdan/beat-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a level picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to pick a level, left/right to change difficulty
and Enter to play. Leaving a level returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate levels
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab/I        - Level statistics
  Q            - Quit

Examples:
  beatarcade menu
  beatarcade menu --fps 30
  beatarcade menu --levels ./my-levels`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	baseCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsInfo {
			goBack, infoErr := tui.RunLevelInfo(cfg.ScreenW, cfg.ScreenH)
			if infoErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", infoErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from the info screen
		}

		factory, err := registry.Factory(menuResult.LevelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		gameCfg := baseCfg
		config.ApplyPreset(&gameCfg, preset)

		// Fresh camera shake for each attempt unless pinned
		play := tui.PlayConfig{
			Game:    gameCfg,
			Runtime: cfg,
			Audio:   !flagNoAudio,
			Logger:  logger,
		}
		if flagSeed == 0 {
			play.Runtime.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(factory, play); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		}

		// Loop back to menu
	}
}

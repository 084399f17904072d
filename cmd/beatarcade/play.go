package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/levels"
	"github.com/vovakirdan/beat-arcade/internal/platform/tui"
	"github.com/vovakirdan/beat-arcade/internal/registry"
)

var flagLevelFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/WASD  - Move
  Space        - Dash (brief invincibility)
  P            - Pause
  R            - Restart from the top
  Esc/B        - Leave the level
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Dying sends you back to the last checkpoint you passed.

Difficulty options:
  easy   - 5 hearts, longer invincibility after a hit
  normal - 3 hearts
  hard   - 1 heart
  fixed  - Use the config file as is

Examples:
  beatarcade play pulse
  beatarcade play warmup --difficulty hard
  beatarcade play --level-file ./mylevel.yaml
  beatarcade play pulse --no-audio`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a level file instead of a registered level")
}

// resolveLevel picks the factory for the play command.
func resolveLevel(args []string) (level.Factory, error) {
	if flagLevelFile != "" {
		def, err := levels.LoadFile(flagLevelFile)
		if err != nil {
			return nil, err
		}
		return def.Factory(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no level given; run 'beatarcade list' to see available levels")
	}
	if !registry.Exists(args[0]) {
		return nil, fmt.Errorf("unknown level %q; run 'beatarcade list' to see available levels", args[0])
	}
	return registry.Factory(args[0])
}

func runPlay(_ *cobra.Command, args []string) error {
	factory, err := resolveLevel(args)
	if err != nil {
		return err
	}

	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	config.ApplyPreset(&gameCfg, preset)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	err = tui.Run(factory, tui.PlayConfig{
		Game:    gameCfg,
		Runtime: runtimeConfig(),
		Audio:   !flagNoAudio,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}

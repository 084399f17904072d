package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beat-arcade/internal/game"
	"github.com/vovakirdan/beat-arcade/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Validate level files",
	Long: `Parse level files, then play each one out headlessly and report how
many obstacles it spawns and how busy it gets.

A directory is checked file by file; files that are not .yaml or .yml
are skipped.

Examples:
  beatarcade check ./mylevel.yaml
  beatarcade check ./levels`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// errCheckFailed is returned when any checked level is invalid.
var errCheckFailed = errors.New("some levels failed to load")

func runCheck(_ *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		defs, err := loadPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed = true
			continue
		}
		for _, def := range defs {
			s := game.Summarize(def.Factory())
			fmt.Printf("ok   %-16s bpm %-6g beats %-6g checkpoints %-2d obstacles %d+%d peak %d @%.1f left %d\n",
				def.Meta.ID, s.Meta.BPM, s.End, len(s.Meta.Checkpoints),
				s.Obstacles, s.Sim.Spawned, s.Sim.Peak, s.Sim.PeakBeat, s.Sim.Left)
		}
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

func loadPath(path string) ([]*levels.Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return levels.LoadDir(path)
	}
	def, err := levels.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []*levels.Definition{def}, nil
}

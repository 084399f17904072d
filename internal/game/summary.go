package game

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/obstacle"
)

// SummaryStep is the beat resolution used by Summarize.
const SummaryStep = 1.0 / 16

// tailBeats is how long past the last authored obstacle a songless level
// without a length is simulated.
const tailBeats = 8

// Summary describes a level without playing it.
type Summary struct {
	Meta      level.Metadata
	Obstacles int     // authored obstacles, spawned ones excluded
	End       float64 // last simulated beat
	Sim       level.SimStats
}

// Summarize builds a fresh level from f and plays it out headlessly.
func Summarize(f level.Factory) Summary {
	l := f()
	s := Summary{
		Meta:      l.Meta,
		Obstacles: l.Len(),
		End:       summaryEnd(l),
	}
	s.Sim = Advance(l, s.End, SummaryStep)
	return s
}

func summaryEnd(l *level.Level) float64 {
	if l.Meta.Length > 0 {
		return l.Meta.Length
	}
	if l.Len() == 0 {
		return 0
	}
	last := lo.MaxBy(l.Obstacles(), func(a, b *obstacle.Obstacle) bool {
		return a.Offset > b.Offset
	})
	return last.Offset + tailBeats
}

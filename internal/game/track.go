package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/music"
)

// OpenTrack picks the beat source for a level: the song through the speaker
// when the level has one and audio is enabled, a silent clock otherwise.
// A song that fails to decode or play falls back to the clock.
func OpenTrack(meta level.Metadata, audio bool, logger *log.Logger) music.Track {
	if audio && len(meta.Song) > 0 {
		p, err := music.NewPlayer(meta.Song, meta.BPM, meta.StartTime)
		if err == nil {
			return p
		}
		logger.Warn("audio unavailable, using silent clock", "level", meta.ID, "err", err)
	}
	if meta.Length <= 0 {
		logger.Warn("level has no length; it will not complete on its own", "level", meta.ID)
	}
	return music.NewClock(meta.BPM, meta.StartTime, meta.Length)
}

package game

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/music"
	"github.com/vovakirdan/beat-arcade/internal/obstacle"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// fakeTrack is a Track whose beat is set by the test.
type fakeTrack struct {
	beat     float64
	playing  bool
	paused   bool
	finished bool
	closed   bool
	seeks    []float64
	cues     []music.Cue
}

func (f *fakeTrack) Play() error { f.playing = true; return nil }

func (f *fakeTrack) SeekBeat(beat float64) error {
	f.beat = beat
	f.finished = false
	f.seeks = append(f.seeks, beat)
	return nil
}

func (f *fakeTrack) Beat() float64         { return f.beat }
func (f *fakeTrack) Finished() bool        { return f.finished }
func (f *fakeTrack) SetPaused(paused bool) { f.paused = paused }
func (f *fakeTrack) Close() error          { f.closed = true; return nil }
func (f *fakeTrack) Cue(c music.Cue)       { f.cues = append(f.cues, c) }

func lastSeek(t *testing.T, f *fakeTrack) float64 {
	t.Helper()
	require.NotEmpty(t, f.seeks)
	return f.seeks[len(f.seeks)-1]
}

// wall covers the whole arena from at to at+100.
func wall(at float64) (float64, obstacle.Behaviour) {
	arena := core.ArenaSize()
	return at, &obstacle.Rectangle{
		Center:   provider.Const(arena.Scale(0.5)),
		Size:     provider.Const(arena.Scale(2)),
		Rotation: provider.Const(0.0),
		Lifetime: 100,
		Warn:     1,
		Leave:    1,
	}
}

func testMeta(checkpoints ...float64) level.Metadata {
	return level.Metadata{ID: "test", Name: "Test", BPM: 120, Length: 200, Checkpoints: checkpoints}
}

func factory(meta level.Metadata, build func(b *level.Builder)) level.Factory {
	return func() *level.Level {
		b := level.NewBuilder()
		if build != nil {
			build(b)
		}
		return b.Build(meta)
	}
}

func newTestSession(t *testing.T, f level.Factory, hp int) (*Session, *fakeTrack) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Player.HP = hp
	track := &fakeTrack{}
	s := NewSession(f, track, Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Logger:  log.New(&strings.Builder{}),
	})
	require.NoError(t, s.Start())
	return s, track
}

func stepAt(s *Session, track *fakeTrack, beat float64, actions ...core.Action) core.StepResult {
	track.beat = beat
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return s.Step(in)
}

func TestStartSeeksToInitialCheckpoint(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), nil), 3)

	assert.True(t, track.playing)
	assert.InDelta(t, 0.02, lastSeek(t, track), 1e-9)
	assert.InDelta(t, 0.02, s.State().Checkpoint, 1e-9)

	// Start is idempotent.
	require.NoError(t, s.Start())
	assert.Len(t, track.seeks, 1)
}

func TestDeathRestartsAtCheckpoint(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(2), func(b *level.Builder) {
		b.At(wall(3))
	}), 1)

	res := stepAt(s, track, 0.5)
	assert.False(t, res.Died)

	res = stepAt(s, track, 2.5)
	assert.True(t, res.ReachedCP)
	assert.Equal(t, 2.0, res.State.Checkpoint)
	assert.Contains(t, track.cues, music.CueCheckpoint)

	oldLevel := s.Level()
	res = stepAt(s, track, 4)
	require.True(t, res.Died)
	assert.Equal(t, 1, res.State.Deaths)
	assert.Equal(t, 2.0, lastSeek(t, track))
	assert.Equal(t, 2.0, res.State.Beat)
	assert.Equal(t, 1, res.State.HP, "fresh player after restart")
	assert.NotSame(t, oldLevel, s.Level())
	assert.Contains(t, track.cues, music.CueDeath)

	// The checkpoint is not passed again.
	res = stepAt(s, track, 2.5)
	assert.False(t, res.ReachedCP)
}

func TestRespawnGrantsCooldown(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), func(b *level.Builder) {
		b.At(wall(1))
	}), 1)

	stepAt(s, track, 0.5)
	res := stepAt(s, track, 2)
	require.True(t, res.Died)

	// The wall is live straight away after the restart, but the respawn
	// cooldown protects the new player.
	for i := 0; i < 5; i++ {
		res = stepAt(s, track, 2+float64(i)*0.1)
		assert.False(t, res.Died)
	}
	assert.Equal(t, 1, s.State().Deaths)
}

func TestHitCostsHP(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), func(b *level.Builder) {
		b.At(wall(1))
	}), 3)

	stepAt(s, track, 0.5)
	res := stepAt(s, track, 1.5)
	assert.False(t, res.Died)
	assert.Equal(t, 2, res.State.HP)
	assert.Equal(t, []music.Cue{music.CueHit}, track.cues)
}

func TestPause(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), nil), 3)

	res := stepAt(s, track, 1, core.ActionPause)
	assert.True(t, res.State.Paused)
	assert.True(t, track.paused)

	before := s.Level().LastBeat()
	stepAt(s, track, 5)
	assert.Equal(t, before, s.Level().LastBeat(), "level frozen while paused")

	res = stepAt(s, track, 5, core.ActionPause)
	assert.False(t, res.State.Paused)
	assert.False(t, track.paused)
	assert.Equal(t, 5.0, s.Level().LastBeat())
}

func TestCompleteAndReplay(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), nil), 3)

	track.finished = true
	res := stepAt(s, track, 10)
	assert.True(t, res.State.Complete)

	res = stepAt(s, track, 11)
	assert.True(t, res.State.Complete)
	assert.Equal(t, 10.0, res.State.Beat, "no updates after completion")

	res = stepAt(s, track, 11, core.ActionRestart)
	assert.False(t, res.State.Complete)
	assert.InDelta(t, 0.02, lastSeek(t, track), 1e-9)
}

func TestRestartForgetsCheckpoints(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(2), nil), 3)

	stepAt(s, track, 0.5)
	res := stepAt(s, track, 3)
	require.True(t, res.ReachedCP)

	res = stepAt(s, track, 3.5, core.ActionRestart)
	assert.InDelta(t, 0.02, res.State.Checkpoint, 1e-9)
	assert.Equal(t, 0, res.State.Deaths)

	res = stepAt(s, track, 3)
	assert.True(t, res.ReachedCP)
}

func TestCameraShake(t *testing.T) {
	shaky := factory(testMeta(), func(b *level.Builder) {
		b.At(0.1, &obstacle.Shake{Amount: 10})
	})

	s, track := newTestSession(t, shaky, 3)
	stepAt(s, track, 0.5)
	cam := s.Camera()
	assert.LessOrEqual(t, cam.Abs().X, 10.0)
	assert.LessOrEqual(t, cam.Abs().Y, 10.0)
	assert.False(t, cam.IsZero())

	// Same seed, same shake.
	s2, track2 := newTestSession(t, shaky, 3)
	stepAt(s2, track2, 0.5)
	assert.Equal(t, cam, s2.Camera())

	cfg := config.DefaultGameConfig()
	cfg.Camera.ShakeScale = 0
	still := NewSession(shaky, &fakeTrack{}, Options{Config: cfg, Runtime: core.DefaultConfig()})
	require.NoError(t, still.Start())
	still.track.(*fakeTrack).beat = 0.5
	still.Step(core.NewInputFrame())
	assert.True(t, still.Camera().IsZero())
}

func TestDecayRateFromConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Camera.DecayRate = 0.5
	s := NewSession(factory(testMeta(), nil), &fakeTrack{}, Options{Config: cfg})
	assert.Equal(t, 0.5, s.Level().DecayRate)
}

func TestRender(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), nil), 3)
	stepAt(s, track, 0.5)

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	assert.Contains(t, screen.Row(0), "Test")
	assert.Contains(t, screen.Row(0), "♥♥♥")
	assert.Contains(t, screen.Row(0), "deaths 0")
	assert.Contains(t, screen.String(), "●")

	track.finished = true
	stepAt(s, track, 1)
	s.Render(screen)
	assert.Contains(t, screen.String(), "LEVEL COMPLETE")
}

func TestRenderCheckpointBanner(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(2), nil), 3)
	stepAt(s, track, 0.5)
	stepAt(s, track, 2.5)

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	assert.Contains(t, screen.Row(0), "Checkpoint!")

	stepAt(s, track, 4.5)
	s.Render(screen)
	assert.NotContains(t, screen.Row(0), "Checkpoint!")
}

func TestCloseClosesTrack(t *testing.T) {
	s, track := newTestSession(t, factory(testMeta(), nil), 3)
	require.NoError(t, s.Close())
	assert.True(t, track.closed)
}

func TestOpenTrack(t *testing.T) {
	logger := log.New(&strings.Builder{})
	meta := testMeta()

	_, ok := OpenTrack(meta, true, logger).(*music.Clock)
	assert.True(t, ok, "no song means a clock")

	meta.Song = []byte("definitely not a wav file")
	_, ok = OpenTrack(meta, true, logger).(*music.Clock)
	assert.True(t, ok, "undecodable song falls back to a clock")

	_, ok = OpenTrack(meta, false, logger).(*music.Clock)
	assert.True(t, ok)
}

func TestPlayerConfig(t *testing.T) {
	cfg := config.DefaultGameConfig().Player
	cfg.HP = 7
	pc := PlayerConfig(cfg)
	assert.Equal(t, 7, pc.HP)
	assert.Equal(t, cfg.DashSpeed, pc.DashSpeed)
	assert.Equal(t, cfg.EdgeMargin, pc.EdgeMargin)
}

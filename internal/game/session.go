// Package game runs a level against its track: it advances the level with
// the song beat, moves the player, restarts from the last checkpoint on
// death and renders everything into a core.Screen.
package game

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/music"
	"github.com/vovakirdan/beat-arcade/internal/player"
)

// checkpointBanner is how many beats "Checkpoint!" stays on screen.
const checkpointBanner = 2

// Options configures a Session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Session is one play-through of a level.
type Session struct {
	factory level.Factory
	track   music.Track
	cfg     config.GameConfig
	tick    float64 // seconds per Step
	logger  *log.Logger
	rng     *rand.Rand

	level  *level.Level
	player *player.Player

	time       float64 // seconds of unpaused play, never rewound
	beat       float64
	checkpoint float64
	nextCP     int
	passedCP   bool
	deaths     int
	camera     core.Vec2

	started  bool
	paused   bool
	complete bool
}

// NewSession prepares a session. Nothing plays until Start.
func NewSession(factory level.Factory, track music.Track, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := opts.Runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}

	s := &Session{
		factory: factory,
		track:   track,
		cfg:     opts.Config,
		tick:    1 / float64(rate),
		logger:  logger,
		rng:     rand.New(rand.NewSource(opts.Runtime.Seed)),
	}
	s.level = s.newLevel()
	s.player = player.New(PlayerConfig(s.cfg.Player))
	s.checkpoint = s.level.Meta.InitialCheckpoint()
	return s
}

func (s *Session) newLevel() *level.Level {
	l := s.factory()
	l.DecayRate = s.cfg.Camera.DecayRate
	return l
}

// Meta returns the metadata of the running level.
func (s *Session) Meta() level.Metadata {
	return s.level.Meta
}

// Start plays the track from the top of the song.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	if err := s.track.Play(); err != nil {
		return fmt.Errorf("game: start %s: %w", s.level.Meta.ID, err)
	}
	s.started = true
	s.seek(s.checkpoint)
	s.logger.Info("level started", "level", s.level.Meta.ID, "bpm", s.level.Meta.BPM)
	return nil
}

// Close releases the track.
func (s *Session) Close() error {
	return s.track.Close()
}

// seek moves the track and brings the fresh level up to the new position.
func (s *Session) seek(beat float64) {
	if err := s.track.SeekBeat(beat); err != nil {
		s.logger.Error("seek failed", "beat", beat, "err", err)
	}
	s.beat = s.track.Beat()
	s.level.FastForward(s.beat)
}

// restartAt rebuilds the level and player and resumes the song at beat.
func (s *Session) restartAt(beat float64) {
	s.level = s.newLevel()
	s.player = player.New(PlayerConfig(s.cfg.Player))
	s.player.Respawn(s.time)
	s.complete = false
	s.seek(beat)
}

// Restart starts the level over from the beginning, forgetting checkpoints.
func (s *Session) Restart() {
	s.checkpoint = s.level.Meta.InitialCheckpoint()
	s.nextCP = 0
	s.passedCP = false
	s.restartAt(s.checkpoint)
	s.logger.Info("level restarted", "level", s.level.Meta.ID)
}

// SetPaused pauses or resumes both the simulation and the track.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	s.track.SetPaused(paused)
}

func (s *Session) cue(c music.Cue) {
	if cuer, ok := s.track.(music.Cuer); ok {
		cuer.Cue(c)
	}
}

// Step advances one frame: pause and restart input, the level update, the
// player update and hit test, then checkpoint and completion bookkeeping.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if !s.started {
		if err := s.Start(); err != nil {
			s.logger.Error("cannot start track", "err", err)
			return core.StepResult{State: s.State()}
		}
	}

	if in.Has(core.ActionPause) && !s.complete {
		s.SetPaused(!s.paused)
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
		return core.StepResult{State: s.State()}
	}
	if s.complete {
		return core.StepResult{State: s.State()}
	}

	s.time += s.tick
	s.beat = s.track.Beat()
	s.level.Update(s.beat)

	hp := s.player.HP
	if s.player.Update(s.time, s.beat, in, s.level) {
		s.deaths++
		s.logger.Info("player died",
			"level", s.level.Meta.ID,
			"beat", fmt.Sprintf("%.2f", s.beat),
			"checkpoint", s.checkpoint,
			"deaths", s.deaths,
		)
		s.cue(music.CueDeath)
		s.restartAt(s.checkpoint)
		return core.StepResult{State: s.State(), Died: true}
	}
	if s.player.HP < hp {
		s.logger.Debug("player hit", "beat", fmt.Sprintf("%.2f", s.beat), "hp", s.player.HP)
		s.cue(music.CueHit)
	}

	var result core.StepResult
	cps := s.level.Meta.Checkpoints
	if s.nextCP < len(cps) && s.beat > cps[s.nextCP] {
		s.checkpoint = cps[s.nextCP]
		s.nextCP++
		s.passedCP = true
		result.ReachedCP = true
		s.logger.Info("checkpoint", "level", s.level.Meta.ID, "beat", s.checkpoint)
		s.cue(music.CueCheckpoint)
	}

	if s.track.Finished() {
		s.complete = true
		s.logger.Info("level complete", "level", s.level.Meta.ID, "deaths", s.deaths)
	}

	s.updateCamera()
	result.State = s.State()
	return result
}

// updateCamera picks a random offset within the shake and adds the jerk.
func (s *Session) updateCamera() {
	scale := s.cfg.Camera.ShakeScale
	shake := math.Abs(s.level.Shake()) * scale
	offset := s.level.Jerk().Scale(scale)
	if shake > 0 {
		offset = offset.Add(core.V(
			(s.rng.Float64()*2-1)*shake,
			(s.rng.Float64()*2-1)*shake,
		))
	}
	s.camera = offset
}

// State returns the current session state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Beat:       s.beat,
		HP:         s.player.HP,
		Deaths:     s.deaths,
		Checkpoint: s.checkpoint,
		Complete:   s.complete,
		Paused:     s.paused,
	}
}

// Camera returns the current camera offset in arena units.
func (s *Session) Camera() core.Vec2 {
	return s.camera
}

// Level returns the running level. It is replaced on every restart.
func (s *Session) Level() *level.Level {
	return s.level
}

// Player returns the current player. It is replaced on every restart.
func (s *Session) Player() *player.Player {
	return s.player
}

// Render draws the frame: background, obstacles, player and HUD.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear(s.level.Background(s.beat))

	arena := core.NewRect(0, 1, dst.Width(), max(dst.Height()-1, 0))
	canvas := NewScreenCanvas(dst, arena, s.camera)
	s.level.Draw(canvas, s.beat)

	pos, radius := s.player.Hitbox()
	color := s.player.Color(s.time)
	canvas.Circle(pos, radius, color)
	canvas.Mark(pos, '●', color)

	s.drawHUD(dst)

	switch {
	case s.complete:
		drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("%s  |  deaths: %d  |  R to replay", s.level.Meta.Name, s.deaths))
	case s.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	hearts := strings.Repeat("♥", max(s.player.HP, 0))
	left := fmt.Sprintf(" %s  %s  beat %.1f", s.level.Meta.Name, hearts, s.beat)
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), ' ', core.Black)
	dst.DrawText(0, 0, left, core.White)

	right := fmt.Sprintf("deaths %d ", s.deaths)
	dst.DrawText(dst.Width()-len(right), 0, right, core.White)

	if s.passedCP && s.checkpoint+checkpointBanner > s.beat {
		dst.DrawTextCentered(0, "Checkpoint!", core.SkyBlue)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.Black)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.White)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.White)
}

package music

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SpeakerRate is the rate the speaker runs at. Songs are resampled to it.
const SpeakerRate beep.SampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
	// initSpeaker is swapped out in tests, where no audio device exists.
	initSpeaker = speaker.Init
)

// ensureSpeaker initialises the speaker the first time it is needed. beep
// refuses a second Init, so every later call reports the first result.
func ensureSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = initSpeaker(SpeakerRate, SpeakerRate.N(time.Second/10))
	})
	return speakerErr
}

// Player plays a WAV song through the system speaker and reports the
// playhead in beats.
type Player struct {
	mu sync.Mutex

	bpm       float64
	startTime float64

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	started  bool
	finished bool
}

// NewPlayer decodes a WAV song and initialises the speaker if no player has
// done so yet. Playback does not start until Play is called.
func NewPlayer(song []byte, bpm, startTime float64) (*Player, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("music: invalid bpm %v", bpm)
	}

	streamer, format, err := wav.Decode(bytes.NewReader(song))
	if err != nil {
		return nil, fmt.Errorf("music: decode song: %w", err)
	}

	if err := ensureSpeaker(); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("music: init speaker: %w", err)
	}

	p := &Player{
		bpm:       bpm,
		startTime: startTime,
		streamer:  streamer,
		format:    format,
	}
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	return p, nil
}

// SampleRate returns the sample rate of the song. Positions and seeks are
// in this rate; the speaker may run at another.
func (p *Player) SampleRate() beep.SampleRate {
	return p.format.SampleRate
}

// Play starts playback on the first call and resumes it afterwards.
func (p *Player) Play() error {
	p.mu.Lock()
	started := p.started
	p.started = true
	p.mu.Unlock()

	if !started {
		p.queue()
	}
	p.SetPaused(false)
	return nil
}

// queue hands the song to the speaker, followed by a callback that marks
// the player finished once the decoder runs dry.
func (p *Player) queue() {
	done := beep.Callback(func() {
		p.mu.Lock()
		p.finished = true
		p.mu.Unlock()
	})
	var song beep.Streamer = p.ctrl
	if p.format.SampleRate != SpeakerRate {
		song = beep.Resample(4, p.format.SampleRate, SpeakerRate, p.ctrl)
	}
	speaker.Play(beep.Seq(song, done))
}

// SeekBeat moves the playhead. Negative beats (before the song start)
// clamp to the first sample. Seeking a finished song queues it again.
func (p *Player) SeekBeat(beat float64) error {
	seconds := SecondsAt(beat, p.startTime, p.bpm)
	if seconds < 0 {
		seconds = 0
	}
	pos := p.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))

	speaker.Lock()
	if n := p.streamer.Len(); pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	err := p.streamer.Seek(pos)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("music: seek to beat %.2f: %w", beat, err)
	}

	p.mu.Lock()
	requeue := p.finished && p.started
	p.finished = false
	p.mu.Unlock()
	if requeue {
		p.queue()
	}
	return nil
}

// Beat returns the playhead in beats.
func (p *Player) Beat() float64 {
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return BeatAt(p.format.SampleRate.D(pos).Seconds(), p.startTime, p.bpm)
}

// Finished reports whether the song has played to its end.
func (p *Player) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}

// SetPaused pauses or resumes the song.
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback and releases the decoder.
func (p *Player) Close() error {
	speaker.Clear()
	return p.streamer.Close()
}

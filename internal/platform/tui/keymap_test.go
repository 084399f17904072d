package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w is up", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a is left", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space dashes", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDash, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"escape goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionInfo},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKeyToMenuAction(tt.msg))
		})
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionLeft, start)
	assert.True(t, h.Held(core.ActionLeft, start.Add(50*time.Millisecond)))
	assert.True(t, h.Held(core.ActionLeft, start.Add(100*time.Millisecond)))
	assert.False(t, h.Held(core.ActionLeft, start.Add(101*time.Millisecond)))

	// Auto-repeat extends the hold.
	h.Press(core.ActionLeft, start.Add(90*time.Millisecond))
	assert.True(t, h.Held(core.ActionLeft, start.Add(150*time.Millisecond)))

	// Opposite direction releases at once.
	h.Press(core.ActionRight, start.Add(160*time.Millisecond))
	assert.False(t, h.Held(core.ActionLeft, start.Add(160*time.Millisecond)))
	assert.True(t, h.Held(core.ActionRight, start.Add(160*time.Millisecond)))

	h.Reset()
	assert.False(t, h.Held(core.ActionRight, start.Add(160*time.Millisecond)))
}

func TestHoldTrackerApply(t *testing.T) {
	now := time.Unix(10, 0)
	h := NewHoldTracker(DefaultHoldWindow)
	h.Press(core.ActionUp, now)
	h.Press(core.ActionRight, now)
	h.Press(core.ActionDash, now) // not a movement, ignored

	frame := core.NewInputFrame()
	h.Apply(&frame, now.Add(DefaultHoldWindow/2))

	assert.Equal(t, core.Vec2{X: 1, Y: -1}, frame.Axis())
	assert.False(t, frame.Has(core.ActionDash))
}

func TestIsMovement(t *testing.T) {
	assert.True(t, IsMovement(core.ActionUp))
	assert.True(t, IsMovement(core.ActionLeft))
	assert.False(t, IsMovement(core.ActionDash))
	assert.False(t, IsMovement(core.ActionNone))
}

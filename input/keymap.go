package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action is a single abstract control a binding can drive
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionDown
)

// Binding targets one action of one player
type Binding struct {
	Player int
	Action Action
}

// Keymap maps terminal keys to player actions. Terminals report
// repeats, not releases, so holds are reconstructed with a timeout.
type Keymap struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

// DefaultKeymap binds four players: WASD, arrows, IJKL and TFGH
func DefaultKeymap() *Keymap {
	return &Keymap{
		Runes: map[rune]Binding{
			'a': {0, ActionLeft},
			'd': {0, ActionRight},
			'w': {0, ActionJump},
			's': {0, ActionDown},

			'j': {2, ActionLeft},
			'l': {2, ActionRight},
			'i': {2, ActionJump},
			'k': {2, ActionDown},

			'f': {3, ActionLeft},
			'h': {3, ActionRight},
			't': {3, ActionJump},
			'g': {3, ActionDown},
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyLeft:  {1, ActionLeft},
			tcell.KeyRight: {1, ActionRight},
			tcell.KeyUp:    {1, ActionJump},
			tcell.KeyDown:  {1, ActionDown},
		},
	}
}

// Lookup resolves a key event to a binding. The second return is false
// when the key is unbound.
func (km *Keymap) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := km.Runes[unifyRune(ev.Rune())]
		return b, ok
	}
	b, ok := km.Keys[ev.Key()]
	return b, ok
}

func unifyRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// HoldTimeout is how long a key counts as held after its last repeat
const HoldTimeout = 150 * time.Millisecond

// Tracker turns key repeat events into per-player held intents
type Tracker struct {
	keymap  *Keymap
	players int
	expiry  [][5]time.Time
}

// NewTracker creates a tracker for the given player count
func NewTracker(km *Keymap, players int) *Tracker {
	return &Tracker{
		keymap:  km,
		players: players,
		expiry:  make([][5]time.Time, players),
	}
}

// Press records a key event at the given time
func (t *Tracker) Press(ev *tcell.EventKey, now time.Time) {
	b, ok := t.keymap.Lookup(ev)
	if !ok || b.Player < 0 || b.Player >= t.players {
		return
	}
	t.expiry[b.Player][b.Action] = now.Add(HoldTimeout)
}

// Intent reports the reconstructed held state for one player
func (t *Tracker) Intent(player int, now time.Time) Intent {
	var in Intent
	if player < 0 || player >= t.players {
		return in
	}
	held := func(a Action) bool { return now.Before(t.expiry[player][a]) }

	if held(ActionLeft) {
		in.Move--
	}
	if held(ActionRight) {
		in.Move++
	}
	in.Jump = held(ActionJump)
	in.Down = held(ActionDown)
	return in.Clamp()
}

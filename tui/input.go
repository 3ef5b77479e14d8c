package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ratato/game"
)

// holdWindow is how long a key counts as held after its last press.
// Terminals report repeats, not releases.
const holdWindow = 180 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// keyState accumulates key events between frames.
type keyState struct {
	held    [dirCount]time.Time
	pause   bool
	restart bool
	quit    bool
	sel     int
}

func newKeyState() *keyState {
	return &keyState{sel: -1}
}

// handle records one key event at now.
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.held[dirUp] = now
	case tcell.KeyDown:
		k.held[dirDown] = now
	case tcell.KeyLeft:
		k.held[dirLeft] = now
	case tcell.KeyRight:
		k.held[dirRight] = now
	case tcell.KeyEscape:
		k.pause = true
	case tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w', 'W':
			k.held[dirUp] = now
		case 's', 'S':
			k.held[dirDown] = now
		case 'a', 'A':
			k.held[dirLeft] = now
		case 'd', 'D':
			k.held[dirRight] = now
		case 'p', 'P', ' ':
			k.pause = true
		case 'r', 'R':
			k.restart = true
		case 'q', 'Q':
			k.quit = true
		case '1', '2', '3', '4', '5':
			k.sel = int(r - '1')
		}
	}
}

// take returns the frame input and clears one-shot signals.
func (k *keyState) take(now time.Time) game.Input {
	held := func(d direction) bool {
		return !k.held[d].IsZero() && now.Sub(k.held[d]) < holdWindow
	}
	in := game.Input{
		Up:      held(dirUp),
		Down:    held(dirDown),
		Left:    held(dirLeft),
		Right:   held(dirRight),
		Select:  k.sel,
		Pause:   k.pause,
		Restart: k.restart,
	}
	k.pause, k.restart, k.sel = false, false, -1
	return in
}

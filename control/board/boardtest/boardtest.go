// Package boardtest is a fake board.Board for testing code that drives the clock hardware.  Time
// is virtual: Sleep returns immediately after advancing the clock and running any events that
// were scheduled in the meantime.
package boardtest

import (
	"fmt"
	"sort"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/screen"
)

var epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type event struct {
	at time.Duration
	f  func()
}

// Board implements board.Board.  It is not safe for concurrent use.
type Board struct {
	Screen *screen.Screen

	// Log records display calls, like "scroll 12:00", "icon happy" and "clear".
	Log []string
	// Sleeps records the argument of every call to Sleep.
	Sleeps []time.Duration
	// OnScroll, if set, is called at the start of every Scroll.
	OnScroll func(text string, wait bool)

	elapsed time.Duration
	buttons [2]board.Latch
	events  []event
}

var _ board.Board = (*Board)(nil)

// New returns a Board whose clock starts at zero.
func New() *Board {
	b := new(Board)
	b.Screen = screen.NewWithClock(nil, func() time.Time { return epoch.Add(b.elapsed) })
	return b
}

// Press presses btn n times right now.
func (b *Board) Press(btn board.Button, n int) {
	for i := 0; i < n; i++ {
		b.buttons[btn].Press()
	}
}

// At runs f when the virtual clock reaches at.  Events scheduled for the same time run in the
// order they were scheduled.
func (b *Board) At(at time.Duration, f func()) {
	b.events = append(b.events, event{at: at, f: f})
	sort.SliceStable(b.events, func(i, j int) bool { return b.events[i].at < b.events[j].at })
}

// PressAt presses btn n times when the virtual clock reaches at.
func (b *Board) PressAt(at time.Duration, btn board.Button, n int) {
	b.At(at, func() { b.Press(btn, n) })
}

// Advance moves the virtual clock forward by d, running events that come due.
func (b *Board) Advance(d time.Duration) {
	target := b.elapsed + d
	for len(b.events) > 0 && b.events[0].at <= target {
		ev := b.events[0]
		b.events = b.events[1:]
		if ev.at > b.elapsed {
			b.elapsed = ev.at
		}
		ev.f()
	}
	b.elapsed = target
}

func (b *Board) WasPressed(btn board.Button) bool { return b.buttons[btn].WasPressed() }
func (b *Board) Presses(btn board.Button) int     { return b.buttons[btn].Presses() }

func (b *Board) Scroll(text string, wait bool) {
	if b.OnScroll != nil {
		b.OnScroll(text, wait)
	}
	b.Log = append(b.Log, "scroll "+text)
	d := b.Screen.Scroll(text)
	if wait {
		b.Advance(d)
	}
}

func (b *Board) Pixel(x, y int) bool        { return b.Screen.Pixel(x, y) }
func (b *Board) SetPixel(x, y int, on bool) { b.Screen.SetPixel(x, y, on) }

func (b *Board) ShowIcon(i board.Icon) {
	b.Log = append(b.Log, fmt.Sprintf("icon %v", i))
	b.Screen.ShowIcon(i)
}

func (b *Board) Clear() {
	b.Log = append(b.Log, "clear")
	b.Screen.Clear()
}

func (b *Board) Elapsed() time.Duration { return b.elapsed }

func (b *Board) Sleep(d time.Duration) {
	b.Sleeps = append(b.Sleeps, d)
	b.Advance(d)
}

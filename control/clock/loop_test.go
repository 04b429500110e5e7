package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/board/boardtest"
)

func count[T comparable](log []T, line T) int {
	var n int
	for _, l := range log {
		if l == line {
			n++
		}
	}
	return n
}

// runAt runs the clock, set to hours:minutes, until stop after the time is entered.  press, if
// set, runs a few seconds into the main loop, after clearing the board's logs.
func runAt(t *testing.T, hours, minutes int, stop time.Duration, press func(b *boardtest.Board)) *boardtest.Board {
	t.Helper()
	b := boardtest.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	enterTime(b, hours, minutes, func() {
		// The dialog still has to scroll the minutes and notice B.
		b.At(b.Elapsed()+stop, cancel)
		if press != nil {
			b.At(b.Elapsed()+5*time.Second, func() {
				b.Log = nil
				b.Sleeps = nil
				press(b)
			})
		}
	})
	c := New(b, DefaultConfig)
	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
	return b
}

func TestRunClearsOutsideWindow(t *testing.T) {
	b := runAt(t, 12, 0, 15*time.Second, func(*boardtest.Board) {})
	if len(b.Log) == 0 {
		t.Fatal("expected display calls")
	}
	if got, want := count(b.Log, "clear"), len(b.Log); got != want {
		t.Errorf("clears:\n  got: %v\n want: %v (log %v)", got, want, b.Log)
	}
}

func TestRunShowsStatusInWindow(t *testing.T) {
	b := runAt(t, 6, 50, 15*time.Second, func(*boardtest.Board) {})
	if len(b.Log) == 0 {
		t.Fatal("expected display calls")
	}
	if got, want := count(b.Log, "icon all_clocks"), len(b.Log); got != want {
		t.Errorf("status icons:\n  got: %v\n want: %v (log %v)", got, want, b.Log)
	}
	if n := count(b.Sleeps, 2*time.Second); n != 0 {
		t.Errorf("held the icon %d times without a press", n)
	}
}

func TestRunButtonB(t *testing.T) {
	b := runAt(t, 12, 0, 15*time.Second, func(b *boardtest.Board) { b.Press(board.B, 1) })
	if got, want := count(b.Log, "icon happy"), 1; got != want {
		t.Errorf("happy icons:\n  got: %v\n want: %v (log %v)", got, want, b.Log)
	}
	if got, want := count(b.Sleeps, 2*time.Second), 1; got != want {
		t.Errorf("icon holds:\n  got: %v\n want: %v", got, want)
	}
}

func TestRunButtonA(t *testing.T) {
	b := runAt(t, 12, 0, 40*time.Second, func(b *boardtest.Board) { b.Press(board.A, 1) })
	if got, want := count(b.Log, "scroll 12:00"), 1; got != want {
		t.Errorf("time shown:\n  got: %v\n want: %v (log %v)", got, want, b.Log)
	}
}

func TestRunButtonABeatsB(t *testing.T) {
	b := runAt(t, 12, 0, 40*time.Second, func(b *boardtest.Board) {
		b.Press(board.A, 1)
		b.Press(board.B, 1)
	})
	if got, want := count(b.Log, "scroll 12:00"), 1; got != want {
		t.Errorf("time shown:\n  got: %v\n want: %v (log %v)", got, want, b.Log)
	}
	// B was consumed by the same tick.
	if got := count(b.Log, "icon happy"); got != 0 {
		t.Errorf("status shown %d times", got)
	}
}

func TestRunIgnoresSetupPresses(t *testing.T) {
	// Entering the minutes leaves A flagged as pressed.
	b := runAt(t, 12, 5, 15*time.Second, nil)
	if got := count(b.Log, "scroll 12:05"); got != 0 {
		t.Errorf("time shown %d times after setup", got)
	}
}

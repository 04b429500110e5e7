// Package clock keeps the time of day on a board with no real-time clock, and decides what the
// wake-up display should show.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
)

const (
	pollEvery = 100 * time.Millisecond
	tick      = 200 * time.Millisecond
	holdIcon  = 2 * time.Second
)

// EventLog receives a line for each decision the clock makes.  A golang.org/x/net/trace.EventLog
// is one.
type EventLog interface {
	Printf(format string, a ...interface{})
}

// Clock is the time of day, kept as the minute the user entered plus the board's elapsed time
// since they entered it.
type Clock struct {
	Log EventLog // Optional.

	b        board.Board
	cfg      Config
	offset   int           // Minute of day at baseline.
	baseline time.Duration // Board time when offset was entered; the offset counts from here, not from boot.
}

// New returns a clock that reads midnight at board start.
func New(b board.Board, cfg Config) *Clock {
	return &Clock{b: b, cfg: cfg}
}

func (c *Clock) logf(format string, a ...interface{}) {
	if c.Log != nil {
		c.Log.Printf(format, a...)
	}
}

// CurrentMinutes returns the current minute of day, 0 through MinutesPerDay-1.
func (c *Clock) CurrentMinutes() int {
	elapsed := (c.b.Elapsed() - c.baseline) * time.Duration(c.cfg.TimeMultiplier)
	m := (c.offset + int(elapsed/time.Minute)) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// FormatMinutes formats a minute of day as 24-hour HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ShowCurrentTime scrolls the current time across the display.  A button press cuts it short.
func (c *Clock) ShowCurrentTime() {
	board.ScrollInterruptible(c.b, FormatMinutes(c.CurrentMinutes()))
}

// SetInitialTimeInteractive asks the user for the time of day: button A counts up the hours,
// button B accepts them, and then the same again for minutes.  It waits for as long as it takes,
// unless the context is cancelled.
func (c *Clock) SetInitialTimeInteractive(ctx context.Context) error {
	board.ScrollInterruptible(c.b, "Click A to enter values, B to set.")
	hours, err := c.askValue(ctx, "hours", 24)
	if err != nil {
		return err
	}
	minutes, err := c.askValue(ctx, "minutes", 60)
	if err != nil {
		return err
	}
	c.offset = hours*60 + minutes
	c.baseline = c.b.Elapsed()
	c.logf("time set to %s", FormatMinutes(c.offset))
	return nil
}

// askValue returns the number of presses of A, modulo max, before B is pressed.  The running value
// is shown after every poll.
func (c *Clock) askValue(ctx context.Context, name string, max int) (int, error) {
	board.ScrollInterruptible(c.b, "set "+name)
	value := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("set %s: %w", name, err)
		}
		value += c.b.Presses(board.A)
		if c.b.WasPressed(board.B) {
			break
		}
		c.b.Scroll(fmt.Sprintf("%02d", value%max), true)
		c.b.Sleep(pollEvery)
	}
	return value % max, nil
}

// Status returns the icon for minute m: asleep before AlmostWakeTime and after SleepTime, clocks
// until WakeTime, and happy otherwise.
func (cfg Config) Status(m int) board.Icon {
	if m < cfg.AlmostWakeTime || m > cfg.SleepTime {
		return board.Asleep
	}
	if m < cfg.WakeTime {
		return board.AllClocks
	}
	return board.Happy
}

// InShowWindow reports whether minute m is strictly between ShowStart and ShowEnd.
func (cfg Config) InShowWindow(m int) bool {
	return cfg.ShowStart < m && m < cfg.ShowEnd
}

// ShowSleepAwakeStatus shows the icon for the current time.  The clocks icon is an animation that
// keeps running after this returns.
func (c *Clock) ShowSleepAwakeStatus() {
	m := c.CurrentMinutes()
	icon := c.cfg.Status(m)
	c.logf("%s: %v", FormatMinutes(m), icon)
	c.b.ShowIcon(icon)
}

// IsWithinShowWindow reports whether the status should be on the display without a button press.
func (c *Clock) IsWithinShowWindow() bool {
	return c.cfg.InShowWindow(c.CurrentMinutes())
}

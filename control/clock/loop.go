package clock

import (
	"context"
	"fmt"

	"github.com/jrockway/wakeup-clock/control/board"
)

// Run asks the user for the time and then runs the clock until the context is cancelled.
func (c *Clock) Run(ctx context.Context) error {
	if err := c.SetInitialTimeInteractive(ctx); err != nil {
		return fmt.Errorf("set initial time: %w", err)
	}
	c.b.WasPressed(board.A)
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("clock loop: %w", err)
		}
		c.Step()
		c.b.Sleep(tick)
	}
}

// Step handles one tick of the main loop.  Button A shows the time.  Button B shows the status
// and holds it on the display for a while; during the show window the status is shown anyway.
// Otherwise the display is cleared.
func (c *Clock) Step() {
	// Reading the flag clears it, so read B exactly once.
	pressedB := c.b.WasPressed(board.B)
	switch {
	case c.b.WasPressed(board.A):
		c.ShowCurrentTime()
	case pressedB || c.IsWithinShowWindow():
		c.ShowSleepAwakeStatus()
		if pressedB {
			c.b.Sleep(holdIcon)
		}
	default:
		c.b.Clear()
	}
}

// Package board describes the hardware a wake-up clock runs on: two buttons, a 5x5 LED matrix
// and a millisecond timer.  Implementations live in hostboard (Linux, periph.io) and microbit
// (TinyGo).
package board

import "time"

// Button identifies one of the two buttons on the front of the board.
type Button int

const (
	A Button = iota
	B
)

func (b Button) String() string {
	switch b {
	case A:
		return "a"
	case B:
		return "b"
	}
	return "unknown"
}

// Icon is one of the fixed images the display knows how to show.
type Icon int

const (
	Asleep Icon = iota
	AllClocks
	Happy
)

func (i Icon) String() string {
	switch i {
	case Asleep:
		return "asleep"
	case AllClocks:
		return "all_clocks"
	case Happy:
		return "happy"
	}
	return "unknown"
}

// Size is the width and height of the LED matrix.
const Size = 5

// Buttons reports button activity.  Both methods consume the state they report; callers that
// need an answer more than once must keep their own copy.
type Buttons interface {
	// WasPressed reports whether b was pressed since the last call to WasPressed(b), and
	// clears the flag.
	WasPressed(b Button) bool
	// Presses returns the number of times b was pressed since the last call to Presses(b),
	// and resets the count to zero.  The count is independent of the WasPressed flag.
	Presses(b Button) int
}

// Display is the 5x5 LED matrix.
type Display interface {
	// Scroll scrolls text across the display from right to left.  If wait is false, Scroll
	// returns immediately and the text keeps moving in the background.
	Scroll(text string, wait bool)
	// Pixel reports whether the LED at (x, y) is lit.  Coordinates are 0-4.
	Pixel(x, y int) bool
	// SetPixel turns the LED at (x, y) on or off, stopping any running scroll or animation.
	SetPixel(x, y int, on bool)
	// ShowIcon shows an icon.  Animated icons keep running after ShowIcon returns.
	ShowIcon(i Icon)
	// Clear turns every LED off.
	Clear()
}

// Timer is the board's only notion of time.
type Timer interface {
	// Elapsed returns the time since the board started.  It never goes backwards.
	Elapsed() time.Duration
	// Sleep blocks the caller for d.
	Sleep(d time.Duration)
}

// Board is everything the clock needs from the hardware.  A Board is created once at startup
// and used from a single goroutine.
type Board interface {
	Buttons
	Display
	Timer
}

package board

import (
	"strings"
	"time"
)

const (
	// scrollGrace is how long to wait after starting a scroll before sampling the display.
	// Glyphs whose leftmost columns are empty would otherwise read as a blank display.
	scrollGrace = 200 * time.Millisecond
	pollEvery   = 100 * time.Millisecond
)

// ScrollInterruptible scrolls text and returns when it has scrolled off the display or when
// either button is pressed, whichever comes first.  Only presses after the call count; stale
// flags are cleared before the scroll starts.  Presses that ended the wait are drained from both
// buttons (flag and count) so the caller does not see them again.
//
// Blank pixels are how the end of the scroll is detected, so spaces are drawn as underscores.
func ScrollInterruptible(b Board, text string) {
	b.WasPressed(A)
	b.WasPressed(B)
	b.Scroll(strings.ReplaceAll(text, " ", "_"), false)
	b.Sleep(scrollGrace)
	for {
		if b.WasPressed(A) || b.WasPressed(B) || AllPixelsOff(b) {
			break
		}
		b.Sleep(pollEvery)
	}
	b.WasPressed(A)
	b.WasPressed(B)
	b.Presses(A)
	b.Presses(B)
}

// AllPixelsOff reports whether every LED on the display is off.
func AllPixelsOff(d Display) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if d.Pixel(x, y) {
				return false
			}
		}
	}
	return true
}

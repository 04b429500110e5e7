// Package microbit is the clock hardware on a BBC micro:bit: the built-in LED matrix, buttons A
// and B, and the CPU's monotonic timer.  Build it with TinyGo for the microbit or microbit-v2
// target.
package microbit

import (
	"image/color"

	"github.com/jrockway/wakeup-clock/control/screen"
)

// The matrix driver reads brightness from the alpha channel in steps of 255/9, with opaque
// meaning brightest, and treats black as off.
const alphaStep = 255 / screen.MaxBrightness

// levelColor returns the color that the matrix driver shows at brightness level.
func levelColor(level uint8) color.RGBA {
	if level == 0 {
		return color.RGBA{}
	}
	if level > screen.MaxBrightness {
		level = screen.MaxBrightness
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255 - alphaStep*level}
}

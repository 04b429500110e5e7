// Package strand drives a 5x5 grid of APA102 LEDs on an SPI bus.
package strand

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/screen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/apa102"
)

const (
	idlePower  = 0.00109 * 5 * board.Size * board.Size // W
	powerLimit = 2                                     // W
)

var (
	writeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strand_write_errors_total",
		Help: "count of frames that could not be written to the apa102 strand",
	})
	powerGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "strand_power_watts",
		Help: "estimated power draw of the last frame, after limiting",
	})
)

// Strand is a grid of APA102 LEDs wired as a single strand.  The 0th LED is in the top-left
// corner and rows alternate direction:
//
//	 0  1  2  3  4
//	 9  8  7  6  5
//	10 11 12 13 14
//	19 18 17 16 15
//	20 21 22 23 24
//
// The power supply for the grid is small, so frames are scaled down to stay within powerLimit.
type Strand struct {
	leds  *apa102.Dev
	Color color.NRGBA // Color of a fully lit LED.
}

// New returns a Strand on the provided SPI port.
func New(p spi.Port) (*Strand, error) {
	opts := apa102.DefaultOpts
	opts.NumPixels = board.Size * board.Size
	opts.Intensity = 255
	opts.Temperature = apa102.NeutralTemp
	opts.DisableGlobalPWM = true
	leds, err := apa102.New(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("init apa102: %w", err)
	}
	return &Strand{leds: leds, Color: color.NRGBA{R: 0xff, A: 0xff}}, nil
}

// indexOf maps an (x,y) coordinate to the strand index.
func indexOf(x, y int) int {
	if y%2 == 0 {
		return y*board.Size + x
	}
	return y*board.Size + board.Size - 1 - x
}

// powerFor returns the watts one pixel draws showing c.  The 1.09mA each pixel draws while off
// is counted once for all 25 pixels in idlePower.
func powerFor(c color.Color) float64 {
	// 20mA per channel at full scale, 60mA for full white.
	r, g, b, _ := c.RGBA()
	return .02 * 5 * (float64(r)/0xffff + float64(g)/0xffff + float64(b)/0xffff)
}

// gamma maps a linear 16-bit channel to the 8-bit value the apa102 expects, so that frame
// brightness steps look evenly spaced.
func gamma(c uint32) uint8 {
	u := float64(c) / 0xffff
	return uint8(255 * math.Pow((u+0.055)/(1.055), 2.4))
}

// pixelColor returns the color of an LED with the given frame brightness.
func (s *Strand) pixelColor(v uint8) color.NRGBA64 {
	r, g, b, _ := s.Color.RGBA()
	k := uint32(v)
	return color.NRGBA64{
		R: uint16(r * k / screen.MaxBrightness),
		G: uint16(g * k / screen.MaxBrightness),
		B: uint16(b * k / screen.MaxBrightness),
		A: 0xffff,
	}
}

// toStrand converts a frame to the colors to send to the strand, and returns the power they will
// draw.
//
// We reduce the brightness of the whole frame to stay within a pre-set power budget.  We do the
// transformation as a linear operation on Rec709 colors, which is probably a bad algorithm.
func (s *Strand) toStrand(f screen.Frame) ([]color.NRGBA, float64) {
	result := make([]color.NRGBA, board.Size*board.Size)

	var power float64
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			power += powerFor(s.pixelColor(f[y][x]))
		}
	}

	scale := float64(1)
	if power > powerLimit {
		scale = powerLimit / power
	}
	power = 0
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			r, g, b, _ := s.pixelColor(f[y][x]).RGBA()
			c := color.NRGBA64{
				R: uint16(scale * float64(r)),
				G: uint16(scale * float64(g)),
				B: uint16(scale * float64(b)),
				A: 0xffff,
			}
			power += powerFor(c)
			result[indexOf(x, y)] = color.NRGBA{R: gamma(uint32(c.R)), G: gamma(uint32(c.G)), B: gamma(uint32(c.B)), A: 0xff}
		}
	}
	return result, power + idlePower
}

// Draw implements screen.Sink.
func (s *Strand) Draw(f screen.Frame) error {
	pixels, power := s.toStrand(f)
	powerGauge.Set(power)
	if _, err := s.leds.Write(apa102.ToRGB(pixels)); err != nil {
		writeErrors.Inc()
		return fmt.Errorf("write to apa102 strand: %w", err)
	}
	return nil
}

//go:build tinygo && (microbit || microbit_v2)

package microbit

import (
	"context"
	"machine"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/screen"
	"tinygo.org/x/drivers/microbitmatrix"
)

const buttonPoll = 10 * time.Millisecond

// matrix is a screen.Sink for the built-in LEDs.  The driver only shows its buffer while Display
// is being called, so refresh has to run all the time.
type matrix struct {
	dev microbitmatrix.Device
}

func (m *matrix) Draw(f screen.Frame) error {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			m.dev.SetPixel(int16(x), int16(y), levelColor(f[y][x]))
		}
	}
	return nil
}

func (m *matrix) refresh() {
	for {
		m.dev.Display()
	}
}

// Board implements board.Board.
type Board struct {
	Screen *screen.Screen

	start   time.Time
	matrix  *matrix
	buttons [2]board.Latch
	pins    [2]machine.Pin
}

var _ board.Board = (*Board)(nil)

// New configures the LED matrix and buttons.  Nothing happens on the hardware until Start.
func New() *Board {
	m := &matrix{dev: microbitmatrix.New()}
	m.dev.Configure(microbitmatrix.Config{Rotation: microbitmatrix.RotationNormal})
	b := &Board{
		Screen: screen.New(m),
		start:  time.Now(),
		matrix: m,
		pins:   [2]machine.Pin{machine.BUTTONA, machine.BUTTONB},
	}
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return b
}

// Start runs the display and watches the buttons in the background, forever.
func (b *Board) Start() {
	go b.matrix.refresh()
	go b.Screen.Run(context.Background())
	go b.watchButtons()
}

// watchButtons counts a press each time a button goes down.  The buttons are active low.
func (b *Board) watchButtons() {
	var down [2]bool
	for {
		for i, p := range b.pins {
			d := !p.Get()
			if d && !down[i] {
				b.buttons[i].Press()
			}
			down[i] = d
		}
		time.Sleep(buttonPoll)
	}
}

func (b *Board) WasPressed(btn board.Button) bool { return b.buttons[btn].WasPressed() }
func (b *Board) Presses(btn board.Button) int     { return b.buttons[btn].Presses() }

// Scroll implements board.Display.
func (b *Board) Scroll(text string, wait bool) {
	d := b.Screen.Scroll(text)
	if wait {
		b.Sleep(d)
	}
}

func (b *Board) Pixel(x, y int) bool        { return b.Screen.Pixel(x, y) }
func (b *Board) SetPixel(x, y int, on bool) { b.Screen.SetPixel(x, y, on) }
func (b *Board) ShowIcon(i board.Icon)      { b.Screen.ShowIcon(i) }
func (b *Board) Clear()                     { b.Screen.Clear() }

func (b *Board) Elapsed() time.Duration { return time.Since(b.start) }
func (b *Board) Sleep(d time.Duration)  { time.Sleep(d) }

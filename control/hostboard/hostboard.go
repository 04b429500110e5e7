// Package hostboard is the clock hardware on a Linux single-board computer: an APA102 strand on
// SPI and two buttons on GPIO pins, all optional.  Whatever is missing can be watched and pressed
// over the debug HTTP server instead.
package hostboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/buttons"
	"github.com/jrockway/wakeup-clock/control/screen"
	"github.com/jrockway/wakeup-clock/control/strand"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	scrollCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scrolls_total",
		Help: "count of texts scrolled across the display",
	})
	iconCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_shown_total",
		Help: "count of times each icon was shown",
	}, []string{"icon"})
)

// Config names the hardware to use.  Empty names mean the device isn't attached.
type Config struct {
	SPI     string // SPI port of the APA102 strand.
	ButtonA string // GPIO pin of button A.
	ButtonB string // GPIO pin of button B.
}

// Board implements board.Board.
type Board struct {
	Screen  *screen.Screen
	Buttons *buttons.Set

	start time.Time
	port  spi.PortCloser
	leds  *strand.Strand
	pins  map[board.Button]gpio.PinIn
}

var _ board.Board = (*Board)(nil)

// Open initializes periph.io and opens the configured devices.
func Open(cfg Config) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph.io: %w", err)
	}
	b := New(nil)
	for btn, name := range map[board.Button]string{board.A: cfg.ButtonA, board.B: cfg.ButtonB} {
		if name == "" {
			continue
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("button %v: no gpio pin named %q", btn, name)
		}
		b.pins[btn] = p
	}
	if cfg.SPI != "" {
		port, err := spireg.Open(cfg.SPI)
		if err != nil {
			return nil, fmt.Errorf("open spi port %q: %w", cfg.SPI, err)
		}
		leds, err := strand.New(port)
		if err != nil {
			port.Close()
			return nil, fmt.Errorf("init strand: %w", err)
		}
		b.port, b.leds = port, leds
		b.Screen = screen.New(leds)
	}
	return b, nil
}

// New returns a Board that draws to sink and has no physical buttons.
func New(sink screen.Sink) *Board {
	return &Board{
		Screen:  screen.New(sink),
		Buttons: new(buttons.Set),
		start:   time.Now(),
		pins:    make(map[board.Button]gpio.PinIn),
	}
}

// Run refreshes the display and watches the buttons until the context is cancelled or one of
// them fails.
func (b *Board) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errCh := make(chan error, len(b.pins)+1)
	go func() {
		errCh <- b.Screen.Run(ctx)
	}()
	for btn, pin := range b.pins {
		btn, pin := btn, pin
		go func() {
			errCh <- b.Buttons.Watch(ctx, btn, pin)
		}()
	}
	return <-errCh
}

// Close blanks the strand and releases the SPI port.  Call it after Run returns.
func (b *Board) Close() error {
	if b.port == nil {
		return nil
	}
	if err := b.leds.Draw(screen.Frame{}); err != nil {
		log.Printf("blank strand: %v", err)
	}
	if err := b.port.Close(); err != nil {
		return fmt.Errorf("close spi port: %w", err)
	}
	return nil
}

func (b *Board) WasPressed(btn board.Button) bool { return b.Buttons.WasPressed(btn) }
func (b *Board) Presses(btn board.Button) int     { return b.Buttons.Presses(btn) }

// Scroll implements board.Display.
func (b *Board) Scroll(text string, wait bool) {
	scrollCounter.Inc()
	d := b.Screen.Scroll(text)
	if wait {
		b.Sleep(d)
	}
}

func (b *Board) Pixel(x, y int) bool        { return b.Screen.Pixel(x, y) }
func (b *Board) SetPixel(x, y int, on bool) { b.Screen.SetPixel(x, y, on) }
func (b *Board) Clear()                     { b.Screen.Clear() }

// ShowIcon implements board.Display.
func (b *Board) ShowIcon(i board.Icon) {
	iconCounter.WithLabelValues(i.String()).Inc()
	b.Screen.ShowIcon(i)
}

func (b *Board) Elapsed() time.Duration { return time.Since(b.start) }
func (b *Board) Sleep(d time.Duration)  { time.Sleep(d) }

// Package screen models the 5x5 LED matrix: what is on it right now, text scrolling across it,
// and icons.  It keeps the current image for debugging the rest of the program without the
// display attached, and hands every new frame to a Sink that drives the real LEDs.
package screen

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/jrockway/wakeup-clock/control/font5x5"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// MaxBrightness is the value of a fully lit LED in a Frame.
	MaxBrightness = 9

	scrollDelay     = 150 * time.Millisecond // Per column.
	animationDelay  = 400 * time.Millisecond // Per frame.
	refreshInterval = 20 * time.Millisecond
)

// Frame is one image on the matrix, indexed [y][x].  Each LED has a brightness from 0 (off) to
// MaxBrightness.
type Frame [board.Size][board.Size]uint8

// Lit reports whether the LED at (x, y) is on.
func (f *Frame) Lit(x, y int) bool {
	return f[y][x] > 0
}

// Sink receives every frame that the screen shows.
type Sink interface {
	Draw(f Frame) error
}

// animation is a sequence of frames started at a particular time.  A finished animation that
// doesn't loop leaves its last frame on the screen.
type animation struct {
	icon   board.Icon
	frames []Frame
	delay  time.Duration
	loop   bool
	start  time.Time
}

// Screen represents the matrix.  Its methods are safe to call concurrently with Run.
type Screen struct {
	sink Sink
	now  func() time.Time

	mu     sync.Mutex
	static Frame      // shown when anim is nil; must hold mu.
	anim   *animation // must hold mu.
}

// New returns a Screen that sends frames to sink.  A nil sink is allowed; the screen is then only
// visible through Frame and the preview handler.
func New(sink Sink) *Screen {
	return NewWithClock(sink, time.Now)
}

// NewWithClock is like New, but reads the time from now.  Animations and scrolls advance
// according to now, not according to calls to Run.
func NewWithClock(sink Sink, now func() time.Time) *Screen {
	return &Screen{sink: sink, now: now}
}

// current returns the frame that should be on the screen right now.  It must be called with mu
// held.
func (s *Screen) current() Frame {
	if s.anim == nil {
		return s.static
	}
	a := s.anim
	i := int(s.now().Sub(a.start) / a.delay)
	if i < 0 {
		i = 0
	}
	if i >= len(a.frames) {
		if !a.loop {
			s.static = a.frames[len(a.frames)-1]
			s.anim = nil
			return s.static
		}
		i %= len(a.frames)
	}
	return a.frames[i]
}

// Frame returns the image on the screen right now.
func (s *Screen) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

// Pixel reports whether the LED at (x, y) is lit right now.
func (s *Screen) Pixel(x, y int) bool {
	f := s.Frame()
	return f.Lit(x, y)
}

// SetPixel turns one LED on or off.  Anything moving on the screen is frozen where it is first.
func (s *Screen) SetPixel(x, y int, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.static = s.current()
	s.anim = nil
	var v uint8
	if on {
		v = MaxBrightness
	}
	s.static[y][x] = v
}

// Clear turns off every LED.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.static = Frame{}
	s.anim = nil
}

// ShowIcon shows icon.  Showing the animated icon that is already running leaves it running
// rather than starting it over.
func (s *Screen) ShowIcon(icon board.Icon) {
	frames, ok := icons[icon]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(frames) == 1 {
		s.static = frames[0]
		s.anim = nil
		return
	}
	if a := s.anim; a != nil && a.loop && a.icon == icon {
		return
	}
	s.anim = &animation{icon: icon, frames: frames, delay: animationDelay, loop: true, start: s.now()}
}

// Scroll starts text moving across the screen from the right edge and returns how long it will
// take to leave the left edge.  The screen is blank when it is done.
func (s *Screen) Scroll(text string) time.Duration {
	frames := ScrollFrames(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anim = &animation{icon: -1, frames: frames, delay: scrollDelay, start: s.now()}
	return time.Duration(len(frames)) * scrollDelay
}

// ScrollFrames renders text as the sequence of frames shown while scrolling it.  The first
// frame has the first column of text at the right edge; the last frame is blank.
func ScrollFrames(text string) []Frame {
	lead := board.Size - 1
	width := len([]rune(text)) * font5x5.Face.Advance
	img := image.NewAlpha(image.Rect(0, 0, lead+width+board.Size, board.Size))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: font5x5.Face,
		Dot:  fixed.P(lead, font5x5.Face.Ascent),
	}
	d.DrawString(text)

	n := img.Bounds().Dx() - board.Size + 1
	frames := make([]Frame, n)
	for off := 0; off < n; off++ {
		for x := 0; x < board.Size; x++ {
			for y := 0; y < board.Size; y++ {
				if img.AlphaAt(off+x, y).A > 0 {
					frames[off][y][x] = MaxBrightness
				}
			}
		}
	}
	return frames
}

// Run sends the current frame to the sink whenever it changes, until the context is cancelled.
// Sink errors are logged; the sink gets the next frame that differs.
func (s *Screen) Run(ctx context.Context) error {
	t := time.NewTicker(refreshInterval)
	defer t.Stop()
	var last Frame
	first := true
	for {
		if f := s.Frame(); first || f != last {
			if s.sink != nil {
				if err := s.sink.Draw(f); err != nil {
					log.Printf("draw frame: %v", err)
				}
			}
			last, first = f, false
		}
		select {
		case <-t.C:
		case <-ctx.Done():
			return fmt.Errorf("screen: %w", ctx.Err())
		}
	}
}

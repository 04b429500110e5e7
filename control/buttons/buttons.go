// Package buttons reads the clock's buttons from GPIO pins and records presses in board.Latch
// values.
package buttons

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"periph.io/x/conn/v3/gpio"
)

const debounceTimeout = 10 * time.Millisecond

var pressCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "button_presses_total",
	Help: "count of button presses, physical or injected over http",
}, []string{"button"})

// Set is the latches for both buttons.
type Set struct {
	A, B board.Latch
}

// Latch returns the latch for button b.
func (s *Set) Latch(b board.Button) *board.Latch {
	if b == board.B {
		return &s.B
	}
	return &s.A
}

// Press records a press of button b.
func (s *Set) Press(b board.Button) {
	pressCounter.WithLabelValues(b.String()).Inc()
	s.Latch(b).Press()
}

// WasPressed implements board.Buttons.
func (s *Set) WasPressed(b board.Button) bool { return s.Latch(b).WasPressed() }

// Presses implements board.Buttons.
func (s *Set) Presses(b board.Button) int { return s.Latch(b).Presses() }

// Watch configures pin as an active-low input and records a press of b each time it is pushed
// down, until the context is cancelled.  Each change must be stable for debounceTimeout before it
// counts.
func (s *Set) Watch(ctx context.Context, b board.Button, pin gpio.PinIn) error {
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return fmt.Errorf("configure button %v on %v: %w", b, pin, err)
	}
	pressed := false
	newPressed := false
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("watch button %v: %w", b, err)
		}
		// Wait for an edge, except if we're waiting for the debounce timeout.  Time out
		// periodically anyway to notice that the context is done.
		timeout := time.Second
		if newPressed != pressed {
			timeout = debounceTimeout
		}
		if pin.WaitForEdge(timeout) {
			newPressed = pin.Read() == gpio.Low
			continue
		}
		if newPressed != pressed {
			pressed = newPressed
			if pressed {
				s.Press(b)
			}
		}
	}
}

// ServeHTTP presses a button on behalf of a remote user: POST /press?button=a.
func (s *Set) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch strings.ToLower(req.FormValue("button")) {
	case "a":
		s.Press(board.A)
	case "b":
		s.Press(board.B)
	default:
		http.Error(w, fmt.Sprintf("unknown button %q", req.FormValue("button")), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package hostboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBoard(t *testing.T) {
	b := New(nil)

	beforeScrolls := testutil.ToFloat64(scrollCounter)
	start := time.Now()
	b.Scroll("", true)
	if took := time.Since(start); took < 500*time.Millisecond {
		t.Errorf("waiting scroll returned after only %v", took)
	}
	if !board.AllPixelsOff(b) {
		t.Error("display is not blank after the scroll")
	}
	b.Scroll("hello", false)
	if got, want := testutil.ToFloat64(scrollCounter)-beforeScrolls, 2.0; got != want {
		t.Errorf("scrolls_total increase:\n  got: %v\n want: %v", got, want)
	}

	beforeIcons := testutil.ToFloat64(iconCounter.WithLabelValues("happy"))
	b.ShowIcon(board.Happy)
	if !b.Pixel(1, 1) {
		t.Error("happy face has no left eye")
	}
	if got, want := testutil.ToFloat64(iconCounter.WithLabelValues("happy"))-beforeIcons, 1.0; got != want {
		t.Errorf("status_shown_total{icon=happy} increase:\n  got: %v\n want: %v", got, want)
	}
	b.Clear()
	b.SetPixel(3, 3, true)
	if !b.Pixel(3, 3) {
		t.Error("pixel (3, 3) is off after SetPixel")
	}

	b.Buttons.Press(board.B)
	if !b.WasPressed(board.B) {
		t.Error("B was not pressed")
	}
	if got, want := b.Presses(board.B), 1; got != want {
		t.Errorf("presses of B:\n  got: %v\n want: %v", got, want)
	}

	e1 := b.Elapsed()
	b.Sleep(10 * time.Millisecond)
	if e2 := b.Elapsed(); e2-e1 < 10*time.Millisecond {
		t.Errorf("elapsed time moved from %v to %v over a 10ms sleep", e1, e2)
	}
}

func TestRun(t *testing.T) {
	b := New(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := b.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("unexpected error from Run: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

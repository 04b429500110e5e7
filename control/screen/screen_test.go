package screen

import (
	"context"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jrockway/wakeup-clock/control/board"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScreen() (*Screen, *fakeClock) {
	c := &fakeClock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewWithClock(nil, c.now), c
}

func blank(f Frame) bool {
	return f == Frame{}
}

func TestScrollFrames(t *testing.T) {
	frames := ScrollFrames("A")
	if got, want := len(frames), board.Size-1+6+1; got != want {
		t.Fatalf("frame count:\n  got: %v\n want: %v", got, want)
	}
	// The first column of "A" starts at the right edge.
	first := frames[0]
	if !first.Lit(4, 1) || first.Lit(4, 0) || first.Lit(0, 1) {
		t.Errorf("unexpected first frame: %v", first)
	}
	if !blank(frames[len(frames)-1]) {
		t.Errorf("last frame is not blank: %v", frames[len(frames)-1])
	}
}

func TestScroll(t *testing.T) {
	s, c := newTestScreen()
	d := s.Scroll("12:00")
	if got, want := d, time.Duration(len(ScrollFrames("12:00")))*scrollDelay; got != want {
		t.Errorf("scroll duration:\n  got: %v\n want: %v", got, want)
	}
	c.advance(d / 2)
	if blank(s.Frame()) {
		t.Error("screen is blank halfway through the scroll")
	}
	c.advance(d)
	if !blank(s.Frame()) {
		t.Errorf("screen is not blank after the scroll: %v", s.Frame())
	}
}

func TestIcons(t *testing.T) {
	s, c := newTestScreen()

	s.ShowIcon(board.Happy)
	if got, want := s.Frame(), icons[board.Happy][0]; got != want {
		t.Errorf("happy:\n  got: %v\n want: %v", got, want)
	}
	c.advance(time.Hour)
	if got, want := s.Frame(), icons[board.Happy][0]; got != want {
		t.Errorf("happy after an hour:\n  got: %v\n want: %v", got, want)
	}

	clocks := icons[board.AllClocks]
	s.ShowIcon(board.AllClocks)
	if got, want := s.Frame(), clocks[0]; got != want {
		t.Errorf("clocks at start:\n  got: %v\n want: %v", got, want)
	}
	c.advance(animationDelay)
	if got, want := s.Frame(), clocks[1]; got != want {
		t.Errorf("clocks after one frame:\n  got: %v\n want: %v", got, want)
	}

	// Showing the same animation again does not restart it.
	s.ShowIcon(board.AllClocks)
	if got, want := s.Frame(), clocks[1]; got != want {
		t.Errorf("clocks after showing again:\n  got: %v\n want: %v", got, want)
	}

	// The animation loops.
	c.advance(time.Duration(len(clocks)) * animationDelay)
	if got, want := s.Frame(), clocks[1]; got != want {
		t.Errorf("clocks after a full loop:\n  got: %v\n want: %v", got, want)
	}

	s.ShowIcon(board.Asleep)
	if got, want := s.Frame(), icons[board.Asleep][0]; got != want {
		t.Errorf("asleep:\n  got: %v\n want: %v", got, want)
	}
}

func TestPixels(t *testing.T) {
	s, c := newTestScreen()
	s.SetPixel(1, 2, true)
	if !s.Pixel(1, 2) {
		t.Error("pixel (1, 2) is off after SetPixel")
	}
	if s.Pixel(2, 1) {
		t.Error("pixel (2, 1) is on")
	}

	// SetPixel freezes a running animation.
	s.ShowIcon(board.AllClocks)
	c.advance(animationDelay)
	s.SetPixel(0, 0, true)
	want := icons[board.AllClocks][1]
	want[0][0] = MaxBrightness
	c.advance(time.Minute)
	if got := s.Frame(); got != want {
		t.Errorf("frozen frame:\n  got: %v\n want: %v", got, want)
	}

	s.Clear()
	if !blank(s.Frame()) {
		t.Errorf("screen is not blank after Clear: %v", s.Frame())
	}
}

func TestParseFrame(t *testing.T) {
	testData := []struct {
		input   string
		wantErr bool
	}{
		{"00000:00000:00000:00000:00000", false},
		{"90000:00000:00000:00000:00009", false},
		{"", true},
		{"0000:00000:00000:00000:00000", true},
		{"000000:00000:00000:00000:00000", true},
		{"00000:00000:00000:00000", true},
		{"00000:00000:00000:00000:00000:00000", true},
		{"0000a:00000:00000:00000:00000", true},
	}
	for _, test := range testData {
		t.Run(test.input, func(t *testing.T) {
			_, err := ParseFrame(test.input)
			if got, want := err != nil, test.wantErr; got != want {
				t.Errorf("error:\n  got: %v\n want error: %v", err, want)
			}
		})
	}
	f, err := ParseFrame("90000:00000:00000:00000:00005")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f[4][4], uint8(5); got != want {
		t.Errorf("bottom right:\n  got: %v\n want: %v", got, want)
	}
}

func TestServeHTTP(t *testing.T) {
	s, _ := newTestScreen()
	s.ShowIcon(board.Happy)
	req := httptest.NewRequest("GET", "/display.png", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got, want := rec.Code, http.StatusOK; got != want {
		t.Errorf("response code:\n  got: %v\n want: %v", got, want)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	scale := previewScale + previewPixelBorder
	if got, want := img.Bounds().Dx(), board.Size*scale; got != want {
		t.Errorf("preview width:\n  got: %v\n want: %v", got, want)
	}
	// Eye at (1, 1) is lit.
	if r, _, _, _ := img.At(scale+1, scale+1).RGBA(); r == 0 {
		t.Error("lit pixel rendered dark")
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0 {
		t.Error("dark pixel rendered lit")
	}
}

type recordingSink struct {
	sync.Mutex
	frames []Frame
	drawn  chan struct{}
}

func (s *recordingSink) Draw(f Frame) error {
	s.Lock()
	s.frames = append(s.frames, f)
	s.Unlock()
	select {
	case s.drawn <- struct{}{}:
	default:
	}
	return nil
}

func TestRun(t *testing.T) {
	sink := &recordingSink{drawn: make(chan struct{}, 1)}
	s := New(sink)
	s.ShowIcon(board.Happy)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() {
		errCh <- s.Run(ctx)
	}()
	select {
	case <-sink.drawn:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for first frame")
	}
	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error after cancel: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for cancel")
	}
	sink.Lock()
	defer sink.Unlock()
	if got, want := sink.frames[0], icons[board.Happy][0]; got != want {
		t.Errorf("first frame:\n  got: %v\n want: %v", got, want)
	}
}

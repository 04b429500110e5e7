package board

import "sync"

// Latch remembers presses of one button between polls.  Driver goroutines call Press; the
// clock loop calls WasPressed and Presses.
type Latch struct {
	mu      sync.Mutex
	pressed bool
	count   int
}

// Press records one physical press.
func (l *Latch) Press() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pressed = true
	l.count++
}

// WasPressed reports whether Press was called since the last WasPressed, and clears the flag.
func (l *Latch) WasPressed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.pressed
	l.pressed = false
	return p
}

// Presses returns the number of presses since the last call to Presses and resets the count.
func (l *Latch) Presses() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.count
	l.count = 0
	return n
}

//go:build tinygo && (microbit || microbit_v2)

package main

import (
	"context"

	"github.com/jrockway/wakeup-clock/control/clock"
	"github.com/jrockway/wakeup-clock/control/microbit"
)

func main() {
	b := microbit.New()
	b.Start()
	// Nothing cancels the context; the loop only ends with a reset.
	clock.New(b, clock.DefaultConfig).Run(context.Background())
}

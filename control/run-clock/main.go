//go:build !tinygo

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrockway/wakeup-clock/control/clock"
	"github.com/jrockway/wakeup-clock/control/hostboard"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/trace"
)

var (
	bind       = flag.String("bind", ":8080", "address to bind for debug/metrics server")
	spiPort    = flag.String("spi", "", "spi port that the led strand is on; empty to only show the display over http")
	buttonA    = flag.String("button-a", "", "gpio pin of button a; empty to only press it over http")
	buttonB    = flag.String("button-b", "", "gpio pin of button b; empty to only press it over http")
	multiplier = flag.Int("time-multiplier", 1, "run the clock this many times faster than real time")
)

func main() {
	flag.Parse()

	b, err := hostboard.Open(hostboard.Config{SPI: *spiPort, ButtonA: *buttonA, ButtonB: *buttonB})
	if err != nil {
		log.Fatalf("open board: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Allow /debug/events from other hosts on the network, like /metrics.
	trace.AuthRequest = func(*http.Request) (bool, bool) { return true, true }
	http.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/display.png", http.StatusFound)
	})
	http.Handle("/display.png", b.Screen)
	http.Handle("/press", b.Buttons)
	http.Handle("/metrics", promhttp.Handler())

	httpDoneCh := make(chan error)
	httpServer := http.Server{Addr: *bind}
	go func() {
		log.Printf("http server listening on %s", httpServer.Addr)
		err := httpServer.ListenAndServe()
		select {
		case httpDoneCh <- err:
		case <-ctx.Done():
		}
		close(httpDoneCh)
	}()

	boardDoneCh := make(chan error)
	go func() {
		err := b.Run(ctx)
		select {
		case boardDoneCh <- err:
		case <-ctx.Done():
		}
		close(boardDoneCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	cfg := clock.DefaultConfig
	cfg.TimeMultiplier = *multiplier
	cl := clock.New(b, cfg)
	events := trace.NewEventLog("clock", "loop")
	cl.Log = events
	loopDoneCh := make(chan error)
	go func() {
		err := cl.Run(ctx)
		select {
		case loopDoneCh <- err:
		case <-ctx.Done():
		}
		close(loopDoneCh)
	}()

	httpAlive := true
	select {
	case err := <-httpDoneCh:
		log.Printf("http server died: %v", err)
		httpAlive = false
	case err := <-boardDoneCh:
		log.Printf("board died: %v", err)
	case err := <-loopDoneCh:
		log.Printf("clock loop died: %v", err)
	case <-sigCh:
		log.Printf("interrupt")
	}
	signal.Stop(sigCh)
	cancel()
	if httpAlive {
		tctx, c := context.WithTimeout(context.Background(), time.Second)
		httpServer.Shutdown(tctx)
		c()
	}
	events.Finish()
	if err := b.Close(); err != nil {
		log.Printf("close board: %v", err)
	}
	os.Exit(1)
}

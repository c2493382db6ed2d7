package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"

	"ticktimer/host/hostclock"
	"ticktimer/host/monitor"
	"ticktimer/host/serial"
)

var (
	device         = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud           = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	readTimeout    = flag.Int("read-timeout", 50, "Serial read timeout in milliseconds")
	silenceTimeout = flag.Duration("silence", 5*time.Second, "Report the board silent after this long without output")
	reportInterval = flag.Duration("report", 10*time.Second, "Interval between summary reports")
	tickOffset     = flag.Uint("tick-offset", 0, "Initial tick count, set near 4294967295 to exercise wraparound")
	verbose        = flag.Bool("verbose", false, "Echo every console line")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *readTimeout
	if cfg.ReadTimeout == 0 {
		fmt.Fprintln(os.Stderr, "Error: read timeout must be nonzero so timers are polled")
		os.Exit(1)
	}

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to flush %s: %v\n", cfg.Device, err)
	}

	ticks := hostclock.NewWithOffset(clock.NewClock(), uint32(*tickOffset))
	mon := monitor.New(port, ticks, &monitor.Config{
		SilenceTimeout: *silenceTimeout,
		ReportInterval: *reportInterval,
		Verbose:        *verbose,
	}, func(msg string) {
		fmt.Printf("%s [tick %d] %s\n", time.Now().Format("15:04:05.000"), ticks.Ticks(), msg)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Monitoring %s (silence=%v, report=%v)\n", cfg.Device, *silenceTimeout, *reportInterval)
	if err := mon.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

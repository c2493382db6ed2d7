// Package monitor watches a board's serial console from the host. It polls
// two interval timers between reads: a silence watchdog that is reset by
// every received byte, and a periodic summary report.
package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"ticktimer/core"
)

// Config holds monitor settings. Zero fields take defaults.
type Config struct {
	// SilenceTimeout is how long the console may stay quiet before the
	// board is reported silent
	SilenceTimeout time.Duration

	// ReportInterval is the period of summary reports
	ReportInterval time.Duration

	// Verbose echoes every console line
	Verbose bool
}

// DefaultConfig returns the default monitor configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(cfg *Config) {
	if cfg.SilenceTimeout <= 0 {
		cfg.SilenceTimeout = 5 * time.Second
	}
	if cfg.ReportInterval <= 0 {
		cfg.ReportInterval = 10 * time.Second
	}
}

// Stats counts what the monitor has seen
type Stats struct {
	Lines         uint32
	StatusLines   uint32
	Malformed     uint32
	SilenceEvents uint32
	Reports       uint32
	Silent        bool
	HaveStatus    bool
	LastStatus    core.Status
}

// Monitor reads console output and polls its timers
type Monitor struct {
	cfg     Config
	port    io.Reader
	logf    func(string)
	silence core.IntervalTimer
	report  core.IntervalTimer
	partial []byte
	readBuf []byte
	stats   Stats
}

// New creates a monitor reading port. Timers count ticks of clock, which
// must tick in milliseconds. A nil logf discards output.
func New(port io.Reader, clock core.Clock, cfg *Config, logf func(string)) *Monitor {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	applyDefaults(&c)

	if logf == nil {
		logf = func(string) {}
	}

	m := &Monitor{
		cfg:     c,
		port:    port,
		logf:    logf,
		silence: core.NewIntervalTimer(clock),
		report:  core.NewIntervalTimer(clock),
		readBuf: make([]byte, 256),
	}
	m.silence.Begin(core.TicksFromDuration(c.SilenceTimeout))
	m.report.Begin(core.TicksFromDuration(c.ReportInterval))
	return m
}

// Run polls until ctx is done or the port fails. The port should have a read
// timeout so that timers are checked while the board is quiet.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := m.Poll(); err != nil {
			return err
		}
	}
}

// Poll performs one read and then checks both timers
func (m *Monitor) Poll() error {
	n, err := m.port.Read(m.readBuf)
	if n > 0 {
		m.Feed(m.readBuf[:n])
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read console: %w", err)
	}

	m.CheckTimers()
	return nil
}

// Feed consumes console bytes, handling each complete line
func (m *Monitor) Feed(data []byte) {
	if len(data) == 0 {
		return
	}

	m.silence.Reset()
	if m.stats.Silent {
		m.stats.Silent = false
		m.logf("console active again")
	}

	m.partial = append(m.partial, data...)
	for {
		idx := bytes.IndexByte(m.partial, '\n')
		if idx < 0 {
			break
		}
		line := string(bytes.TrimRight(m.partial[:idx], "\r"))
		m.partial = m.partial[idx+1:]
		m.handleLine(line)
	}

	// Drop runaway output without newlines
	if len(m.partial) > 4096 {
		m.partial = m.partial[:0]
	}
}

func (m *Monitor) handleLine(line string) {
	m.stats.Lines++
	if m.cfg.Verbose {
		m.logf("< " + line)
	}

	status, err := ParseStatus(line)
	switch {
	case err == nil:
		m.stats.StatusLines++
		m.stats.HaveStatus = true
		m.stats.LastStatus = status
	case errors.Is(err, ErrNotStatus):
	default:
		m.stats.Malformed++
		m.logf(fmt.Sprintf("bad status line %q: %v", line, err))
	}
}

// CheckTimers reports silence and emits the periodic summary when due
func (m *Monitor) CheckTimers() {
	if !m.stats.Silent && m.silence.IsExpired() {
		m.stats.Silent = true
		m.stats.SilenceEvents++
		m.logf(fmt.Sprintf("console silent for more than %v", m.cfg.SilenceTimeout))
	}

	if m.report.IsExpired() {
		m.stats.Reports++
		m.logf(m.summary())
		m.report.Reset()
	}
}

func (m *Monitor) summary() string {
	s := fmt.Sprintf("lines=%d status=%d malformed=%d silent=%v",
		m.stats.Lines, m.stats.StatusLines, m.stats.Malformed, m.stats.Silent)
	if m.stats.HaveStatus {
		last := m.stats.LastStatus
		s += fmt.Sprintf(" uptime=%dms blinks=%d", core.TicksToMS(last.Uptime), last.Blinks)
		if last.HaveAccel {
			s += fmt.Sprintf(" accel=(%d,%d,%d)", last.AccelX, last.AccelY, last.AccelZ)
		}
	}
	return s
}

// Stats returns a copy of the counters
func (m *Monitor) Stats() Stats {
	return m.stats
}

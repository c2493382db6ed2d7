package monitor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticktimer/host/hostclock"
)

// scriptedPort returns one chunk per Read, then (0, nil) like a timed out port
type scriptedPort struct {
	chunks []string
	err    error
}

func (p *scriptedPort) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		return 0, p.err
	}
	n := copy(b, p.chunks[0])
	p.chunks = p.chunks[1:]
	return n, nil
}

type logRecorder struct {
	lines []string
}

func (r *logRecorder) write(s string) {
	r.lines = append(r.lines, s)
}

func (r *logRecorder) contains(substr string) bool {
	for _, line := range r.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func newTestMonitor(port io.Reader, cfg *Config) (*Monitor, *fakeclock.FakeClock, *logRecorder) {
	fake := fakeclock.NewFakeClock(time.Unix(1000, 0))
	rec := &logRecorder{}
	m := New(port, hostclock.New(fake), cfg, rec.write)
	return m, fake, rec
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5*time.Second, cfg.SilenceTimeout)
	assert.Equal(t, 10*time.Second, cfg.ReportInterval)
}

func TestFeedSplitsLines(t *testing.T) {
	m, _, _ := newTestMonitor(&scriptedPort{}, nil)

	m.Feed([]byte("boot\r\nstatus uptime=10"))
	m.Feed([]byte(" blinks=2\r\n"))

	stats := m.Stats()
	assert.Equal(t, uint32(2), stats.Lines)
	assert.Equal(t, uint32(1), stats.StatusLines)
	require.True(t, stats.HaveStatus)
	assert.Equal(t, uint32(10), stats.LastStatus.Uptime)
	assert.Equal(t, uint32(2), stats.LastStatus.Blinks)
}

func TestMalformedStatusCounted(t *testing.T) {
	m, _, rec := newTestMonitor(&scriptedPort{}, nil)

	m.Feed([]byte("status uptime=abc\n"))

	assert.Equal(t, uint32(1), m.Stats().Malformed)
	assert.True(t, rec.contains("bad status line"))
}

func TestSilenceDetected(t *testing.T) {
	port := &scriptedPort{}
	m, fake, rec := newTestMonitor(port, &Config{SilenceTimeout: time.Second, ReportInterval: time.Hour})

	fake.Increment(time.Second)
	require.NoError(t, m.Poll())
	assert.False(t, m.Stats().Silent, "not silent at exactly the timeout")

	fake.Increment(time.Millisecond)
	require.NoError(t, m.Poll())
	assert.True(t, m.Stats().Silent)
	assert.True(t, rec.contains("console silent"))

	// Reported once per silent period
	fake.Increment(time.Minute)
	require.NoError(t, m.Poll())
	assert.Equal(t, uint32(1), m.Stats().SilenceEvents)

	port.chunks = []string{"hello\n"}
	require.NoError(t, m.Poll())
	assert.False(t, m.Stats().Silent)
	assert.True(t, rec.contains("console active again"))

	fake.Increment(500 * time.Millisecond)
	require.NoError(t, m.Poll())
	assert.False(t, m.Stats().Silent, "data restarted the silence timer")
}

func TestPeriodicReport(t *testing.T) {
	port := &scriptedPort{chunks: []string{"status uptime=2000 blinks=4 accel=\"1 -2 3\"\n"}}
	m, fake, rec := newTestMonitor(port, &Config{SilenceTimeout: time.Hour, ReportInterval: 10 * time.Second})

	require.NoError(t, m.Poll())
	assert.Equal(t, uint32(0), m.Stats().Reports)

	fake.Increment(10*time.Second + time.Millisecond)
	require.NoError(t, m.Poll())
	assert.Equal(t, uint32(1), m.Stats().Reports)
	assert.True(t, rec.contains("uptime=2000ms blinks=4 accel=(1,-2,3)"))

	fake.Increment(5 * time.Second)
	require.NoError(t, m.Poll())
	assert.Equal(t, uint32(1), m.Stats().Reports, "report timer restarts after each report")

	fake.Increment(6 * time.Second)
	require.NoError(t, m.Poll())
	assert.Equal(t, uint32(2), m.Stats().Reports)
}

func TestPollTreatsEOFAsTimeout(t *testing.T) {
	m, _, _ := newTestMonitor(&scriptedPort{err: io.EOF}, nil)
	assert.NoError(t, m.Poll())
}

func TestRunStopsOnReadError(t *testing.T) {
	readErr := errors.New("device unplugged")
	m, _, _ := newTestMonitor(&scriptedPort{err: readErr}, nil)

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, readErr)
}

func TestRunStopsOnCancel(t *testing.T) {
	m, _, _ := newTestMonitor(&scriptedPort{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, m.Run(ctx))
}

// Package monitor drives the sampling loop: it keeps the current interface,
// periodically re-evaluates the choice and turns counter readings into samples.
package monitor

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/shini4i/netrate/internal/netif"
	"github.com/shini4i/netrate/internal/stats"
)

const (
	// DefaultTickInterval is the period between counter readings.
	DefaultTickInterval = time.Second

	// DefaultReselectInterval is the period between interface re-evaluations
	// (roaming, cable changes, VPN toggling).
	DefaultReselectInterval = 15 * time.Second
)

// Emitter receives every produced sample.
type Emitter interface {
	Emit(stats.Sample) error
}

// Options configures a Monitor. Zero values fall back to defaults, except
// Source and Emitter, which are required.
type Options struct {
	Source           netif.Source
	Emitter          Emitter
	Pattern          *regexp.Regexp
	Clock            clockwork.Clock
	TickInterval     time.Duration
	ReselectInterval time.Duration
	Alpha            float64
}

// Monitor owns all loop state. It is not safe for concurrent use; Run and Tick
// must be called from a single goroutine.
type Monitor struct {
	source           netif.Source
	emitter          Emitter
	pattern          *regexp.Regexp
	clock            clockwork.Clock
	tickInterval     time.Duration
	reselectInterval time.Duration
	alpha            float64

	current   string
	state     stats.State
	lastCheck time.Time
}

// New creates a Monitor and performs the initial interface selection.
func New(opts Options) *Monitor {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.ReselectInterval <= 0 {
		opts.ReselectInterval = DefaultReselectInterval
	}
	if opts.Alpha <= 0 || opts.Alpha > 1 {
		opts.Alpha = stats.DefaultAlpha
	}

	m := &Monitor{
		source:           opts.Source,
		emitter:          opts.Emitter,
		pattern:          opts.Pattern,
		clock:            opts.Clock,
		tickInterval:     opts.TickInterval,
		reselectInterval: opts.ReselectInterval,
		alpha:            opts.Alpha,
	}

	name, _ := netif.Select(m.source, m.pattern)
	m.setCurrent(name)
	m.lastCheck = m.clock.Now()
	return m
}

// Current returns the monitored interface, or "" when none is selected.
func (m *Monitor) Current() string {
	return m.current
}

// Run ticks every TickInterval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		m.Tick()

		select {
		case <-ctx.Done():
			return nil
		case <-m.clock.After(m.tickInterval):
		}
	}
}

// Tick performs one loop iteration and returns the sample it emitted, if any.
func (m *Monitor) Tick() (stats.Sample, bool) {
	// The re-selection timer runs independently of interface loss below.
	if m.clock.Since(m.lastCheck) >= m.reselectInterval {
		name, _ := netif.Select(m.source, m.pattern)
		if name != m.current {
			m.setCurrent(name)
		}
		m.lastCheck = m.clock.Now()
	}

	if m.current == "" {
		name, _ := netif.Select(m.source, m.pattern)
		m.setCurrent(name)
		return stats.Sample{}, false
	}

	counters, err := m.source.ReadCounters(m.current)
	if err != nil {
		slog.Debug("Failed to read interface counters", "interface", m.current, "error", err)
		m.setCurrent("")
		return stats.Sample{}, false
	}

	snap := stats.Snapshot{
		RxBytes: counters.RxBytes,
		TxBytes: counters.TxBytes,
		Up:      counters.Up,
		Time:    m.clock.Now(),
	}
	if !m.state.Seeded() {
		stats.Update(&m.state, m.current, snap, m.alpha)
		slog.Debug("Counters baseline captured", "interface", m.current,
			"rx_total", stats.FormatBytes(counters.RxBytes), "tx_total", stats.FormatBytes(counters.TxBytes))
		return stats.Sample{}, false
	}

	sample, _ := stats.Update(&m.state, m.current, snap, m.alpha)
	slog.Debug("Sample emitted", "sample", sample)
	if err := m.emitter.Emit(sample); err != nil {
		slog.Debug("Failed to emit sample", "error", err)
	}
	return sample, true
}

// setCurrent replaces the monitored interface and resets the smoothing state.
func (m *Monitor) setCurrent(name string) {
	if name != m.current {
		if name == "" {
			slog.Info("Interface lost", "interface", m.current)
		} else {
			slog.Info("Monitoring interface", "interface", name, "previous", m.current)
		}
	}
	m.current = name
	m.state.Reset()
}

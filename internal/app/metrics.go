package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts the work done by the event loop.
type Metrics struct {
	// Input handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputErrors  atomic.Uint64

	// Drawing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	saves atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordInput records the time spent handling one input event.
func (m *Metrics) RecordInput(duration time.Duration, err error) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
	if err != nil {
		m.inputErrors.Add(1)
	}
}

// RecordRender records the time spent drawing one frame.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordSave counts a successful save.
func (m *Metrics) RecordSave() {
	m.saves.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Inputs      uint64
	InputErrors uint64
	AvgInput    time.Duration
	Renders     uint64
	AvgRender   time.Duration
	Saves       uint64
	Uptime      time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Inputs:      m.inputCount.Load(),
		InputErrors: m.inputErrors.Load(),
		Renders:     m.renderCount.Load(),
		Saves:       m.saves.Load(),
		Uptime:      time.Since(m.startTime),
	}
	if s.Inputs > 0 {
		s.AvgInput = time.Duration(m.inputTotalNs.Load() / int64(s.Inputs))
	}
	if s.Renders > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.Renders))
	}
	return s
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer starts a new timer.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Package metrics holds runtime counters of the server.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/indigo-web/lite/http/status"
)

// Metrics is safe for concurrent use. The zero value is ready to use.
type Metrics struct {
	connsTotal    atomic.Int64
	connsActive   atomic.Int64
	requestsTotal atomic.Int64
	parseFailures atomic.Int64
	panics        atomic.Int64
	errors4xx     atomic.Int64
	errors5xx     atomic.Int64
	latencyNs     atomic.Int64
}

func New() *Metrics {
	return new(Metrics)
}

// ConnOpened must be paired with ConnClosed.
func (m *Metrics) ConnOpened() {
	m.connsTotal.Add(1)
	m.connsActive.Add(1)
}

func (m *Metrics) ConnClosed() {
	m.connsActive.Add(-1)
}

func (m *Metrics) ParseFailed() {
	m.parseFailures.Add(1)
}

func (m *Metrics) Panicked() {
	m.panics.Add(1)
}

// Responded records a response sent back.
func (m *Metrics) Responded(code status.Code, took time.Duration) {
	m.requestsTotal.Add(1)
	m.latencyNs.Add(took.Nanoseconds())

	switch {
	case code >= 500:
		m.errors5xx.Add(1)
	case code >= 400:
		m.errors4xx.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters. Counters are loaded one by one,
// so under load they might be slightly inconsistent with each other.
type Snapshot struct {
	ConnsTotal     int64         `json:"conns_total"`
	ConnsActive    int64         `json:"conns_active"`
	RequestsTotal  int64         `json:"requests_total"`
	ParseFailures  int64         `json:"parse_failures"`
	Panics         int64         `json:"panics"`
	Errors4xx      int64         `json:"errors_4xx"`
	Errors5xx      int64         `json:"errors_5xx"`
	AverageLatency time.Duration `json:"average_latency_ns"`
}

func (m *Metrics) Snapshot() Snapshot {
	requests := m.requestsTotal.Load()
	var avg time.Duration
	if requests > 0 {
		avg = time.Duration(m.latencyNs.Load() / requests)
	}

	return Snapshot{
		ConnsTotal:     m.connsTotal.Load(),
		ConnsActive:    m.connsActive.Load(),
		RequestsTotal:  requests,
		ParseFailures:  m.parseFailures.Load(),
		Panics:         m.panics.Load(),
		Errors4xx:      m.errors4xx.Load(),
		Errors5xx:      m.errors5xx.Load(),
		AverageLatency: avg,
	}
}

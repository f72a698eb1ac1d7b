package searcher

import (
	"sync/atomic"
	"time"
)

type Metrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Depth      int
	Goroutines int
	Leaves     int64
	Nodes      int64 // Visited by alpha-beta
	Cutoffs    int64 // Siblings skipped by pruning
	Fallback   bool
}

type MetricsCollector interface {
	Start(depth, goroutines int)
	AddLeaf()
	AddNode()
	AddCutoff(skipped int)
	SetFallback(value bool)
	Complete() Metrics
}

type metricsCollector struct {
	startTime  time.Time
	depth      int
	goroutines int
	leaves     atomic.Int64
	nodes      atomic.Int64
	cutoffs    atomic.Int64
	fallback   atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.leaves.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.fallback.Store(false)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff(skipped int) {
	m.cutoffs.Add(int64(skipped))
}

func (m *metricsCollector) SetFallback(value bool) {
	m.fallback.Store(value)
}

func (m *metricsCollector) Complete() Metrics {
	return Metrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Leaves:     m.leaves.Load(),
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
		Fallback:   m.fallback.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(depth, goroutines int) {}
func (m *noMetricsCollector) AddLeaf()                    {}
func (m *noMetricsCollector) AddNode()                    {}
func (m *noMetricsCollector) AddCutoff(skipped int)       {}
func (m *noMetricsCollector) SetFallback(value bool)      {}
func (m *noMetricsCollector) Complete() Metrics           { return Metrics{} }

package compiler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
)

// Metrics records compilation statistics as Prometheus collectors.
type Metrics struct {
	mu sync.Mutex

	runsTotal      *prometheus.CounterVec
	phaseDuration  *prometheus.HistogramVec
	generatedTypes *prometheus.GaugeVec

	registerer prometheus.Registerer
	registered bool
}

// NewMetrics creates the collectors. They are registered on registerer by
// Register; a nil registerer selects the default one.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Metrics{
		registerer: registerer,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ldpb",
			Subsystem: "compile",
			Name:      "runs_total",
			Help:      "Total number of schema compilations by result",
		}, []string{"result"}),
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ldpb",
			Subsystem: "compile",
			Name:      "phase_duration_seconds",
			Help:      "Duration of each compilation phase",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"phase"}),
		generatedTypes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ldpb",
			Name:      "generated_types",
			Help:      "Number of declarations produced by the last compilation",
		}, []string{"kind"}),
	}
}

// Register registers the collectors. Safe to call multiple times.
func (m *Metrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}
	var err error
	if m.runsTotal, err = register(m.registerer, m.runsTotal); err != nil {
		return err
	}
	if m.phaseDuration, err = register(m.registerer, m.phaseDuration); err != nil {
		return err
	}
	if m.generatedTypes, err = register(m.registerer, m.generatedTypes); err != nil {
		return err
	}
	m.registered = true
	return nil
}

// register returns the collector already registered under c's name, if any,
// so that every Metrics on one registerer records into the same series.
func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	err := r.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if !errors.As(err, &already) {
		return c, err
	}
	existing, ok := already.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("metrics: %T registered under the same name", already.ExistingCollector)
	}
	return existing, nil
}

// Hooks observes phase durations.
func (m *Metrics) Hooks() Hooks {
	observe := func(ctx PhaseContext) {
		m.phaseDuration.WithLabelValues(string(ctx.Phase)).Observe(ctx.Duration.Seconds())
	}
	return Hooks{
		OnPhaseDone:  observe,
		OnPhaseError: func(ctx PhaseContext, _ error) { observe(ctx) },
	}
}

// RecordRun counts a finished compilation.
func (m *Metrics) RecordRun(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.runsTotal.WithLabelValues(result).Inc()
}

// RecordSummary publishes the declaration counts of a compilation.
func (m *Metrics) RecordSummary(s gen.Summary) {
	m.generatedTypes.WithLabelValues("file").Set(float64(s.Files))
	m.generatedTypes.WithLabelValues("message").Set(float64(s.Messages))
	m.generatedTypes.WithLabelValues("enum").Set(float64(s.Enums))
	m.generatedTypes.WithLabelValues("ordered_map").Set(float64(s.OrderedMaps))
	m.generatedTypes.WithLabelValues("hash_map").Set(float64(s.HashMaps))
	m.generatedTypes.WithLabelValues("structured").Set(float64(s.StructuredTypes))
}

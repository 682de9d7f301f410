package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/recast/pkg/domain"
)

// Metrics holds the decode counters. Create with NewMetrics and attach to an
// engine via Hooks.
type Metrics struct {
	compiles  *prometheus.CounterVec
	matches   prometheus.Counter
	noMatches prometheus.Counter
	decodes   *prometheus.CounterVec
}

// NewMetrics registers the recast counters on reg (use
// prometheus.DefaultRegisterer for the default registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		compiles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recast_pattern_compiles_total",
			Help: "Pattern cache accesses by result",
		}, []string{"result"}),
		matches: factory.NewCounter(prometheus.CounterOpts{
			Name: "recast_matches_total",
			Help: "Inputs that satisfied their pattern",
		}),
		noMatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "recast_no_matches_total",
			Help: "Inputs that did not satisfy their pattern",
		}),
		decodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recast_decodes_total",
			Help: "Decode calls by outcome",
		}, []string{"result"}),
	}
}

// Hooks returns lifecycle hooks that feed the counters. Combine with other
// hooks by hand if a host needs both metrics and custom callbacks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCompile: func(e *domain.CompileEvent) {
			m.compiles.WithLabelValues(compileResult(e)).Inc()
		},
		OnMatch: func(e *domain.MatchEvent) {
			m.matches.Inc()
		},
		OnNoMatch: func(e *domain.MatchEvent) {
			m.noMatches.Inc()
		},
		OnDecode: func(e *domain.DecodeEvent) {
			m.decodes.WithLabelValues(decodeResult(e.Err)).Inc()
		},
	}
}

func compileResult(e *domain.CompileEvent) string {
	switch {
	case e.Err != nil:
		return "error"
	case e.CacheHit:
		return "hit"
	default:
		return "miss"
	}
}

func decodeResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNoMatch):
		return "no_match"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "error"
	}
}

package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Metrics holds the Prometheus collectors for the conversation engine.
type Metrics struct {
	transitions       *prometheus.CounterVec
	clarifyFalls      *prometheus.CounterVec
	enrichmentQueries prometheus.Counter
	enrichmentResults prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. Passing
// prometheus.DefaultRegisterer wires them into the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldquote_transitions_total",
				Help: "Total number of applied conversation transitions",
			},
			[]string{"from", "to", "event"},
		),
		clarifyFalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldquote_clarify_total",
				Help: "Total number of falls into the clarify recovery phase",
			},
			[]string{"from"},
		),
		enrichmentQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fieldquote_enrichment_queries_total",
				Help: "Total number of catalog search queries issued",
			},
		),
		enrichmentResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fieldquote_enrichment_results",
				Help:    "Number of deduplicated products found per enrichment",
				Buckets: prometheus.LinearBuckets(0, 2, 8),
			},
		),
	}
	reg.MustRegister(m.transitions, m.clarifyFalls, m.enrichmentQueries, m.enrichmentResults)
	return m
}

// Hooks returns ConversationHooks recording into these collectors.
func (m *Metrics) Hooks() domain.ConversationHooks {
	return domain.ConversationHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.From), string(e.To), string(e.Event)).Inc()
		},
		OnClarify: func(_ context.Context, e *domain.ClarifyEvent) {
			m.clarifyFalls.WithLabelValues(string(e.From)).Inc()
		},
		OnEnrichment: func(_ context.Context, e *domain.EnrichmentEvent) {
			m.enrichmentQueries.Add(float64(e.Queries))
			m.enrichmentResults.Observe(float64(e.Results))
		},
	}
}

// Combine merges several hook sets into one, calling each in order. Useful
// for attaching logging and metrics hooks simultaneously.
func Combine(hooks ...domain.ConversationHooks) domain.ConversationHooks {
	return domain.ConversationHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, h := range hooks {
				if h.OnTransition != nil {
					h.OnTransition(ctx, e)
				}
			}
		},
		OnClarify: func(ctx context.Context, e *domain.ClarifyEvent) {
			for _, h := range hooks {
				if h.OnClarify != nil {
					h.OnClarify(ctx, e)
				}
			}
		},
		OnEnrichment: func(ctx context.Context, e *domain.EnrichmentEvent) {
			for _, h := range hooks {
				if h.OnEnrichment != nil {
					h.OnEnrichment(ctx, e)
				}
			}
		},
	}
}

type slogLogger interface {
	Info(msg string, args ...any)
}

// NewLoggingHooks records conversation lifecycle events on a slog-style
// logger, mirroring the metrics hook shape.
func NewLoggingHooks(logger slogLogger) domain.ConversationHooks {
	return domain.ConversationHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			logger.Info("transition", "from", e.From, "to", e.To, "event", e.Event)
		},
		OnClarify: func(_ context.Context, e *domain.ClarifyEvent) {
			logger.Info("clarify", "from", e.From, "attempts", e.Attempts)
		},
		OnEnrichment: func(_ context.Context, e *domain.EnrichmentEvent) {
			logger.Info("enrichment", "trade", e.Trade, "queries", e.Queries, "results", e.Results)
		},
	}
}

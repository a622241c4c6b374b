package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PredictionsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSubmitted,
			Help: HelpTextPredictionsSubmitted,
		},
	)

	FightsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFightsScored,
			Help: HelpTextFightsScored,
		},
	)

	FightsCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFightsCanceled,
			Help: HelpTextFightsCanceled,
		},
	)

	EventsFinalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsFinalized,
			Help: HelpTextEventsFinalized,
		},
	)

	LeaderboardBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardBuilds,
			Help: HelpTextLeaderboardBuilds,
		},
		[]string{LabelScope},
	)
)

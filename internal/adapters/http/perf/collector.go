package perf

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record.
type Entry struct {
	Kind       EntryKind
	Path       string // "METHOD /path" for requests, driver op for queries
	StatusCode int    // HTTP status (0 for queries)
	DurationMs float64
}

// Collector owns a private Prometheus registry for the site.
// Every method is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	queryDuration     *prometheus.HistogramVec
	macroCalculations *prometheus.CounterVec
	trialRequests     *prometheus.CounterVec
	contactMessages   prometheus.Counter
	signups           *prometheus.CounterVec
	adminActions      *prometheus.CounterVec
}

// NewCollector creates a collector with Go runtime and process metrics registered.
// PRE: none
// POST: Returns a ready-to-use collector; Handler serves its registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ironcore_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ironcore_db_query_duration_seconds",
			Help:    "Duration of database calls",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"op"}),
		macroCalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ironcore_macro_calculations_total",
			Help: "Macro calculator submissions by goal and outcome",
		}, []string{"goal", "outcome"}),
		trialRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ironcore_trial_requests_total",
			Help: "Free trial requests by goal",
		}, []string{"goal"}),
		contactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ironcore_contact_messages_total",
			Help: "Contact form messages received",
		}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ironcore_signups_total",
			Help: "Member sign-ups by training level",
		}, []string{"level"}),
		adminActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ironcore_admin_actions_total",
			Help: "Admin panel mutations by action",
		}, []string{"action"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requestDuration,
		c.queryDuration,
		c.macroCalculations,
		c.trialRequests,
		c.contactMessages,
		c.signups,
		c.adminActions,
	)
	return c
}

// Record observes a timing entry.
// PRE: e.DurationMs >= 0
// POST: the matching histogram is updated
func (c *Collector) Record(e Entry) {
	seconds := e.DurationMs / 1000
	switch e.Kind {
	case KindRequest:
		c.requestDuration.WithLabelValues(e.Path, strconv.Itoa(e.StatusCode)).Observe(seconds)
	case KindQuery:
		c.queryDuration.WithLabelValues(e.Path).Observe(seconds)
	}
}

// CountMacroCalculation increments the calculator counter.
func (c *Collector) CountMacroCalculation(goal, outcome string) {
	c.macroCalculations.WithLabelValues(goal, outcome).Inc()
}

// CountTrialRequest increments the trial counter.
func (c *Collector) CountTrialRequest(goal string) {
	c.trialRequests.WithLabelValues(goal).Inc()
}

// CountContactMessage increments the contact counter.
func (c *Collector) CountContactMessage() {
	c.contactMessages.Inc()
}

// CountSignup increments the sign-up counter.
func (c *Collector) CountSignup(level string) {
	c.signups.WithLabelValues(level).Inc()
}

// CountAdminAction increments the admin action counter.
func (c *Collector) CountAdminAction(action string) {
	c.adminActions.WithLabelValues(action).Inc()
}

// Registry exposes the underlying registry (for tests and extra collectors).
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Package metrics holds the Prometheus business counters for contact
// submissions and exposes them for scraping.
//
// Collectors are registered on an explicit Registerer instead of the global
// default so tests can use a fresh registry each time.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contact"

// Submission results.
const (
	ResultAccepted       = "accepted"
	ResultInvalid        = "invalid"
	ResultSpam           = "spam"
	ResultDeliveryFailed = "delivery_failed"
)

// Metrics are the business collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	Submissions       *prometheus.CounterVec
	LeadOutcomes      *prometheus.CounterVec
	EmailSendDuration *prometheus.HistogramVec
	RateLimited       *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Contact form submissions by result.",
		}, []string{"result"}),
		LeadOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_outcomes_total",
			Help:      "CRM lead upsert outcomes (created, updated, skipped, failed_transient, failed_configuration).",
		}, []string{"outcome"}),
		EmailSendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_send_duration_seconds",
			Help:      "Time spent rendering and sending one email.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"template", "result"}),
		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-IP rate limiter.",
		}, []string{"route"}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{m.Submissions, m.LeadOutcomes, m.EmailSendDuration, m.RateLimited} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering contact metrics: %w", err)
	}

	return m, nil
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveSubmission counts one submission with the given result.
func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result).Inc()
}

// ObserveLeadOutcome counts one CRM upsert outcome.
func (m *Metrics) ObserveLeadOutcome(outcome string) {
	if m == nil {
		return
	}
	m.LeadOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveEmailSend records how long sending the named template took.
func (m *Metrics) ObserveEmailSend(template string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.EmailSendDuration.WithLabelValues(template, result).Observe(d.Seconds())
}

// ObserveRateLimited counts one rejected request on route.
func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(route).Inc()
}

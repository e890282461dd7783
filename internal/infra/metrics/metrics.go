// Package metrics provides Prometheus collection and exposition.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"beerhaus/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.MetricsRecorder.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	announcements   prometheus.Counter
	comments        prometheus.Counter
	profileSaves    *prometheus.CounterVec
	cleanupFailures *prometheus.CounterVec
	eventsConsumed  *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beerhaus_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "beerhaus_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		announcements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beerhaus_announcements_posted_total",
			Help: "Announcements created",
		}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beerhaus_comments_added_total",
			Help: "Comments appended to announcements",
		}),
		profileSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beerhaus_profile_saves_total",
			Help: "Profile saves, labelled by whether a new picture was uploaded",
		}, []string{"with_picture"}),
		cleanupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beerhaus_cleanup_failures_total",
			Help: "Best-effort cleanup operations that failed",
		}, []string{"operation"}),
		eventsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beerhaus_community_events_consumed_total",
			Help: "Community events received by the worker, by type and outcome",
		}, []string{"type", "outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.announcements,
		c.comments,
		c.profileSaves,
		c.cleanupFailures,
		c.eventsConsumed,
	)

	return c
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordAnnouncementPosted() {
	c.announcements.Inc()
}

func (c *Collector) RecordCommentAdded() {
	c.comments.Inc()
}

func (c *Collector) RecordProfileSaved(withPicture bool) {
	c.profileSaves.WithLabelValues(strconv.FormatBool(withPicture)).Inc()
}

func (c *Collector) RecordCleanupFailure(operation string) {
	c.cleanupFailures.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordEventConsumed(eventType, outcome string) {
	c.eventsConsumed.WithLabelValues(eventType, outcome).Inc()
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

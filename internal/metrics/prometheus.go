package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of voice platform webhook events received, by type",
		},
		[]string{"type"},
	)

	SMSSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_sent_total",
			Help: "Total number of SMS notifications delivered per tenant",
		},
		[]string{"tenant"},
	)

	SMSFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_failed_total",
			Help: "Total number of SMS delivery failures per tenant",
		},
		[]string{"tenant"},
	)

	SpamBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spam_calls_blocked_total",
			Help: "Total number of spam/sales calls screened out per tenant",
		},
		[]string{"tenant"},
	)

	TenantsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tenants_loaded",
			Help: "Number of tenant records loaded from the configuration file",
		},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(WebhookEvents)
	prometheus.MustRegister(SMSSent)
	prometheus.MustRegister(SMSFailed)
	prometheus.MustRegister(SpamBlocked)
	prometheus.MustRegister(TenantsLoaded)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

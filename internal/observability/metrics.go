package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	DialogsEnqueued    prometheus.Counter
	DialogsPresented   prometheus.Counter
	DialogsAutoSkipped prometheus.Counter
	ClicksTotal        prometheus.Counter
	DroppedEvents      *prometheus.CounterVec
	HandlerPanics      prometheus.Counter
	ActiveDialogs      prometheus.Gauge
	WSMessages         *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DialogsEnqueued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_enqueued_total",
			Help:      "Dialog entries enqueued across all players.",
		}),
		DialogsPresented: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_presented_total",
			Help:      "Dialog entries pushed to the presentation layer.",
		}),
		DialogsAutoSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_auto_skipped_total",
			Help:      "Buttonless dialog entries retired without presentation.",
		}),
		ClicksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialog_clicks_total",
			Help:      "Dialog button clicks dispatched.",
		}),
		DroppedEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_click_events_total",
			Help:      "Click events dropped as protocol inconsistencies, by reason.",
		}, []string{"reason"}),
		HandlerPanics: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_panics_total",
			Help:      "Producer handlers that panicked during dispatch.",
		}),
		ActiveDialogs: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_dialogs",
			Help:      "Dialogs currently displayed across all players.",
		}),
		WSMessages: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_messages_total",
			Help:      "WebSocket messages by direction and type.",
		}, []string{"direction", "type"}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"btcforge/logx"
)

type walletPromMetrics struct {
	serviceUpUnixSeconds prometheus.Gauge
	builtTxCount         prometheus.Counter
	signedTxCount        prometheus.Counter
	broadcastTxCount     prometheus.Counter
	requestErrorCount    *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	panicCount           prometheus.Counter
}

func newWalletPromMetrics() *walletPromMetrics {
	return &walletPromMetrics{
		serviceUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "btcforge_service_up_timestamp_unix_seconds",
				Help: "Unix timestamp the wallet service started at",
			},
		),
		builtTxCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "btcforge_built_tx_count",
				Help: "The total number of unsigned transactions built",
			},
		),
		signedTxCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "btcforge_signed_tx_count",
				Help: "The total number of transactions fully signed",
			},
		),
		broadcastTxCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "btcforge_broadcast_tx_count",
				Help: "The total number of transactions broadcast via the explorer",
			},
		),
		requestErrorCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btcforge_request_error_count",
				Help: "The total number of failed requests by error code",
			},
			[]string{"code"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btcforge_request_duration_seconds",
				Help:    "Duration of wallet service requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "btcforge_panic_count",
				Help: "The total number of recovered panics",
			},
		),
	}
}

var walletMetrics *walletPromMetrics

// InitMetrics initializes the metric set; call once at process start.
func InitMetrics() {
	walletMetrics = newWalletPromMetrics()
	walletMetrics.serviceUpUnixSeconds.SetToCurrentTime()
}

// RegisterMetrics exposes the prometheus handler on the given mux.
func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("METRICS", "registering prometheus metrics handler")
	mux.Handle("/metrics", promhttp.Handler())
}

func IncreaseBuiltTxCount() {
	if walletMetrics != nil {
		walletMetrics.builtTxCount.Inc()
	}
}

func IncreaseSignedTxCount() {
	if walletMetrics != nil {
		walletMetrics.signedTxCount.Inc()
	}
}

func IncreaseBroadcastTxCount() {
	if walletMetrics != nil {
		walletMetrics.broadcastTxCount.Inc()
	}
}

func RecordRequestError(code string) {
	if walletMetrics != nil {
		walletMetrics.requestErrorCount.With(prometheus.Labels{"code": code}).Inc()
	}
}

func RecordRequestDuration(method string, duration time.Duration) {
	if walletMetrics != nil {
		walletMetrics.requestDuration.With(prometheus.Labels{"method": method}).Observe(duration.Seconds())
	}
}

func IncreasePanicCount() {
	if walletMetrics != nil {
		walletMetrics.panicCount.Inc()
	}
}

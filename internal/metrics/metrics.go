package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "bscout"

// IndexerMetrics tracks poll-loop progress for prometheus scraping.
type IndexerMetrics struct {
	chainTip           prometheus.Gauge
	lastProcessedBlock prometheus.Gauge
	blocksProcessed    prometheus.Counter
	reconnects         prometheus.Counter
	processingTime     prometheus.Gauge
}

func NewIndexerMetrics(registerer prometheus.Registerer) *IndexerMetrics {
	factory := promauto.With(registerer)

	return &IndexerMetrics{
		chainTip: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_tip",
			Help:      "Latest block height reported by the remote node",
		}),
		lastProcessedBlock: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_processed_block",
			Help:      "Highest block height fully processed",
		}),
		blocksProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_processed_total",
			Help:      "Number of blocks processed since start",
		}),
		reconnects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconnects_total",
			Help:      "Number of reconnect attempts after poll errors",
		}),
		processingTime: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_processing_time_ms",
			Help:      "Processing time of the last block in milliseconds",
		}),
	}
}

func (m *IndexerMetrics) SetChainTip(height uint64) {
	m.chainTip.Set(float64(height))
}

func (m *IndexerMetrics) BlockProcessed(height uint64, elapsed time.Duration) {
	m.lastProcessedBlock.Set(float64(height))
	m.blocksProcessed.Inc()
	m.processingTime.Set(float64(elapsed.Milliseconds()))
}

func (m *IndexerMetrics) Reconnect() {
	m.reconnects.Inc()
}

// InitMetricsServer starts a prometheus scrape endpoint on address, or
// does nothing when address is empty. Serve failures, a port already in
// use for example, are logged rather than returned.
func InitMetricsServer(logger *zap.SugaredLogger, address string) {
	if len(address) == 0 {
		return
	}

	r := mux.NewRouter()
	r.Path("/metrics").Handler(promhttp.Handler())

	srv := &http.Server{
		Addr:    address,
		Handler: r,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("metrics server failed", "error", err, "address", address)
		}
	}()
}

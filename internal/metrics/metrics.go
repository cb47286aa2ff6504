package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle outcomes used as the status label on cycle metrics.
const (
	CycleOK          = "ok"
	CycleEmpty       = "empty"
	CycleFetchError  = "fetch_error"
	CycleInsertError = "insert_error"
)

var (
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_cycles_total",
		Help: "Total number of ingestion cycles by outcome",
	}, []string{"status"})

	rowsInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingest_rows_inserted_total",
		Help: "Total number of price observation rows inserted",
	})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ingest_cycle_duration_seconds",
		Help:    "Time spent on each ingestion cycle",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

// RecordCycle records one finished cycle with its outcome and duration.
func RecordCycle(status string, d time.Duration) {
	cyclesTotal.WithLabelValues(status).Inc()
	cycleDuration.Observe(d.Seconds())
}

// AddRowsInserted adds to the inserted-row counter.
func AddRowsInserted(n int) {
	rowsInsertedTotal.Add(float64(n))
}

// Package metrics provides Prometheus metrics for the ingestion loop.
//
// Key metrics:
//   - ingest_cycles_total{status}: cycle outcomes (ok, empty, fetch_error, insert_error)
//   - ingest_rows_inserted_total: committed observation rows
//   - ingest_cycle_duration_seconds: per-cycle latency
package metrics

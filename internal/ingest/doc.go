// Package ingest implements the ingestion loop: on a fixed interval it
// fetches the upstream price snapshot, reconciles the overlapping
// market maps into one observation per item, and appends them to the
// price history store as a single transactional batch.
//
// The loop carries no state between cycles and never exits on a cycle
// failure; only cancelling its context stops it.
package ingest

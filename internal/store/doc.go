// Package store implements the PostgreSQL-backed price history store.
//
// The ingestion side appends one batch of rows per cycle inside a
// transaction; the query side is read-only. The table is append-only:
// no updates or deletes happen anywhere in the codebase.
package store

// Package database provides the PostgreSQL connection pool and schema
// bootstrap for the price history table.
package database

// Package model defines shared data types used across the price tracker.
//
// Conventions:
//   - Prices: decimal.Decimal (stored as NUMERIC(20,8)); nil pointer = not traded
//   - Timestamps: time.Time, assigned once per ingestion cycle
package model

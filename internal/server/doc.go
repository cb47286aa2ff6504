// Package server exposes the read-only query API over the price
// history store plus the static chart page that consumes it.
//
// Routes:
//   - GET /api/items          — distinct item names, sorted
//   - GET /api/price_history  — one item's observations in a lookback window
//   - GET /                   — chart page
//   - GET /images/*           — static assets
package server

// Package api provides the client for the public sfl.world prices API.
//
// The upstream surface is a single unauthenticated GET returning every
// market's current item prices as one JSON document. Transient failures
// (5xx, 429, network errors) are retried with exponential backoff.
package api

// Package http exposes a completed pipeline run as a read-only JSON API for
// serve mode. All statistics are served from the aggregator's outputs; the
// handlers never recompute figures from raw records.
package http

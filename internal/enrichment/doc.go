// Package enrichment attaches external product catalog metadata (category,
// brand, rating) to validated transactions. The HTTP client is the only
// network boundary of the whole pipeline; it is time-bounded and degrades to
// "nothing matched" on any failure so a slow or unreachable provider can
// never block report generation. The adapter itself is a pure mapping step
// over an id-to-metadata catalog.
package enrichment

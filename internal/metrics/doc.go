// Package metrics provides observability hooks for docsite config reloads and exports.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay optional:
//
//	w := export.NewWriter(dir)                                  // NoopRecorder
//	w := export.NewWriter(dir, export.WithRecorder(recorder))   // Prometheus
//
// NewPrometheusRecorder registers the collectors on a registry; HTTPHandler
// serves that registry for scraping (see `docsite watch --metrics-addr`).
package metrics

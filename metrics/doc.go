// Package metrics exports search runs to Prometheus.
//
// A Recorder owns three collectors registered on a caller-supplied
// prometheus.Registerer:
//
//   - <namespace>_search_runs_total{label,outcome}        counter
//   - <namespace>_search_expanded_states{label}           histogram
//   - <namespace>_search_duration_seconds{label,outcome}  histogram
//
// Recorder.Option plugs the recorder into any search as a report hook:
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	res, err := search.Dijkstra(ctx, p, rec.Option())
package metrics

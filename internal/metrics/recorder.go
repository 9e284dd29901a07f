package metrics

import "time"

// ResultLabel enumerates config reload outcomes for counters.
type ResultLabel string

const (
	ResultSuccess   ResultLabel = "success"
	ResultUnchanged ResultLabel = "unchanged"
	ResultInvalid   ResultLabel = "invalid"
	ResultFailed    ResultLabel = "failed"
)

// Recorder defines observability hooks for config reloads and exports. Implementations
// may forward to Prometheus; NoopRecorder is the default when metrics are not configured.
type Recorder interface {
	IncReload(result ResultLabel)
	ObserveReloadDuration(d time.Duration)
	ObserveExportDuration(target string, d time.Duration)
	IncExport(target string, success bool)
	SetConfigIssues(n int)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncReload(ResultLabel) {}
func (NoopRecorder) ObserveReloadDuration(time.Duration) {}
func (NoopRecorder) ObserveExportDuration(string, time.Duration) {}
func (NoopRecorder) IncExport(string, bool) {}
func (NoopRecorder) SetConfigIssues(int) {}

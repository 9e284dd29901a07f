package metrics

import (
	"testing"
	"time"
)

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncReload(ResultSuccess)
	r.ObserveReloadDuration(time.Millisecond)
	r.ObserveExportDuration("hugo", time.Millisecond)
	r.IncExport("hugo", true)
	r.SetConfigIssues(0)
}

func TestPrometheusRecorderSatisfiesInterface(t *testing.T) {
	var _ Recorder = (*PrometheusRecorder)(nil)
}

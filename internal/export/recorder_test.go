package export

import "git.home.luguber.info/inful/docsite/internal/metrics"

type countingRecorder struct {
	metrics.NoopRecorder
	ok, failed int
}

func (c *countingRecorder) IncExport(_ string, success bool) {
	if success {
		c.ok++
		return
	}
	c.failed++
}

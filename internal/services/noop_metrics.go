package services

import "time"

// NoopMetrics discards every observation. Used by tests and by deployments
// that run without a metrics endpoint.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (NoopMetrics) RecordIngest(rows int, duration time.Duration) {}
func (NoopMetrics) RecordIngestFailure()                          {}
func (NoopMetrics) RecordCategorized(category string)             {}
func (NoopMetrics) RecordCorrection(kind string)                  {}
func (NoopMetrics) SetActiveSessions(n int)                       {}

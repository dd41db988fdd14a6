package card

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordValidation(string, string)               {}
func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}

package card

// MetricsCollector receives operation outcomes from a card.
type MetricsCollector interface {
	RecordOperation(op string, applied float64)
	RecordError(op, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperation(string, float64) {}
func (n *NoopMetricsCollector) RecordError(string, string)      {}

package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
const (
	AttrEntity    = attribute.Key("entity")
	AttrOperation = attribute.Key("operation")
	AttrOutcome   = attribute.Key("outcome")
	AttrErrorCode = attribute.Key("error_code")
)

// ModuleMetrics counts and times module operations
type ModuleMetrics struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
	codeOf     func(error) string
}

// NewModuleMetrics creates the module instruments on meter. codeOf maps an
// error to a low-cardinality code attribute and may be nil.
func NewModuleMetrics(meter metric.Meter, codeOf func(error) string) (*ModuleMetrics, error) {
	operations, err := meter.Int64Counter("medusa.module.operations",
		metric.WithDescription("Number of module operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("medusa.module.operation.duration",
		metric.WithDescription("Duration of module operations"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &ModuleMetrics{operations: operations, duration: duration, codeOf: codeOf}, nil
}

// RecordOperation records one finished operation
func (m *ModuleMetrics) RecordOperation(ctx context.Context, entity, operation string, d time.Duration, err error) {
	if m == nil {
		return
	}

	attrs := []attribute.KeyValue{AttrEntity.String(entity), AttrOperation.String(operation)}
	if err != nil {
		attrs = append(attrs, AttrOutcome.String("error"))
		if m.codeOf != nil {
			if code := m.codeOf(err); code != "" {
				attrs = append(attrs, AttrErrorCode.String(code))
			}
		}
	} else {
		attrs = append(attrs, AttrOutcome.String("ok"))
	}

	set := metric.WithAttributes(attrs...)
	m.operations.Add(ctx, 1, set)
	m.duration.Record(ctx, float64(d.Microseconds())/1000, set)
}

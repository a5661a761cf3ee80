package emitter

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/robosketch/engine/pkg/core"
)

const instrumentationName = "github.com/robosketch/engine/internal/emitter"

var (
	metricsOnce sync.Once
	metricsErr  error

	programsGenerated metric.Int64Counter
	pointsEmitted     metric.Int64Counter
)

// initMetrics creates the package counters on the global OTel meter (no-op if
// not configured). Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		m := otel.Meter(instrumentationName)

		programsGenerated, metricsErr = m.Int64Counter(
			"emitter.programs.generated",
			metric.WithDescription("Total programs generated per dialect"),
		)
		if metricsErr != nil {
			metricsErr = fmt.Errorf("creating programs counter: %w", metricsErr)
			return
		}

		pointsEmitted, metricsErr = m.Int64Counter(
			"emitter.points.emitted",
			metric.WithDescription("Total motion points written per dialect"),
		)
		if metricsErr != nil {
			metricsErr = fmt.Errorf("creating points counter: %w", metricsErr)
		}
	})
	return metricsErr
}

// recordProgram counts one successful generation.
func recordProgram(dialect core.Dialect, points int) {
	if programsGenerated == nil || pointsEmitted == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("dialect", dialect.String()))
	programsGenerated.Add(context.Background(), 1, attrs)
	pointsEmitted.Add(context.Background(), int64(points), attrs)
}

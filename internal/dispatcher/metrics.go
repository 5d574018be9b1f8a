package dispatcher

import (
	"context"
	"fmt"

	"github.com/carrierops/interpreter/pkg/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/carrierops/interpreter/internal/dispatcher"

// counters tracks handled and failed commands per family.
type counters struct {
	processed metric.Int64Counter
	failed    metric.Int64Counter
}

// newCounters creates the instruments on mp, or on the global provider
// (a no-op unless one was installed) when mp is nil.
func newCounters(mp metric.MeterProvider) (counters, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationName)

	var c counters
	var err error
	c.processed, err = m.Int64Counter(
		"dispatcher.commands.processed",
		metric.WithDescription("Total commands handled"),
	)
	if err != nil {
		return c, fmt.Errorf("creating processed counter: %w", err)
	}
	c.failed, err = m.Int64Counter(
		"dispatcher.commands.failed",
		metric.WithDescription("Total commands whose handler returned an error"),
	)
	if err != nil {
		return c, fmt.Errorf("creating failed counter: %w", err)
	}
	return c, nil
}

func (c counters) record(family core.Family, err error) {
	attrs := metric.WithAttributes(attribute.String("family", family.String()))
	if err != nil {
		c.failed.Add(context.Background(), 1, attrs)
		return
	}
	c.processed.Add(context.Background(), 1, attrs)
}

package pathfinder

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/navpath/astar"
)

// Package-level tracer and meter for route queries.
var (
	tracer = otel.Tracer("navpath.pathfinder")
	meter  = otel.Meter("navpath.pathfinder")
)

var (
	routeLatency    metric.Float64Histogram
	routeTotal      metric.Int64Counter
	routeUnresolved metric.Int64Counter
	routeLength     metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		routeLatency, err = meter.Float64Histogram(
			"navpath_route_duration_seconds",
			metric.WithDescription("Duration of route queries including endpoint resolution"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		routeTotal, err = meter.Int64Counter(
			"navpath_route_total",
			metric.WithDescription("Total number of route queries"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		routeUnresolved, err = meter.Int64Counter(
			"navpath_route_unresolved_total",
			metric.WithDescription("Route queries with an endpoint that did not resolve to a node"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		routeLength, err = meter.Int64Histogram(
			"navpath_route_length",
			metric.WithDescription("Number of nodes in returned routes"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startRouteSpan creates a span for a route query.
func startRouteSpan(ctx context.Context, start, goal Marker, generation uint64) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Pathfinder.Route",
		trace.WithAttributes(
			attribute.String("route.start", start.String()),
			attribute.String("route.goal", goal.String()),
			attribute.Int64("route.generation", int64(generation)),
		),
	)
}

// setRouteSpanResult sets the result attributes on a route span.
func setRouteSpanResult(span trace.Span, res astar.Result) {
	span.SetAttributes(
		attribute.String("route.status", res.Status.String()),
		attribute.Int("route.length", len(res.Route)),
		attribute.Int("route.iterations", res.Iterations),
	)
	if res.Status == astar.StatusUnresolved {
		span.SetStatus(codes.Error, "endpoint not resolved")
	}
}

// recordRouteMetrics records metrics for a route query.
func recordRouteMetrics(ctx context.Context, duration time.Duration, res astar.Result) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("status", res.Status.String()),
	)

	routeLatency.Record(ctx, duration.Seconds(), attrs)
	routeTotal.Add(ctx, 1, attrs)
	if res.Status == astar.StatusUnresolved {
		routeUnresolved.Add(ctx, 1)
	}
	if res.Found() {
		routeLength.Record(ctx, int64(len(res.Route)))
	}
}

package search

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the tracer and meter of this package.
const instrumentationName = "github.com/katalvlaran/lvsearch/search"

// instruments are the metric instruments of one MeterProvider. They are
// created once and shared by every run reporting to that provider.
type instruments struct {
	once     sync.Once
	runs     metric.Int64Counter
	expanded metric.Int64Histogram
	duration metric.Float64Histogram
}

// instrumentCache maps a metric.MeterProvider to its *instruments.
var instrumentCache sync.Map

// instrumentsFor returns the cached instruments of mp, creating them on
// first use. Providers with a non-comparable dynamic type cannot key the
// cache and get fresh instruments per call.
func instrumentsFor(mp metric.MeterProvider) *instruments {
	in := &instruments{}
	if t := reflect.TypeOf(mp); t != nil && t.Comparable() {
		v, _ := instrumentCache.LoadOrStore(mp, in)
		in = v.(*instruments)
	}
	in.once.Do(func() { in.init(mp.Meter(instrumentationName)) })

	return in
}

// init creates the instruments. Creation failures leave the corresponding
// instrument nil; runs proceed without it.
func (in *instruments) init(meter metric.Meter) {
	if c, err := meter.Int64Counter("search_runs_total",
		metric.WithDescription("Search runs by outcome"),
	); err == nil {
		in.runs = c
	}
	if h, err := meter.Int64Histogram("search_expanded_states",
		metric.WithDescription("States expanded per search run"),
	); err == nil {
		in.expanded = h
	}
	if h, err := meter.Float64Histogram("search_duration_seconds",
		metric.WithDescription("Wall-clock duration of search runs"),
		metric.WithUnit("s"),
	); err == nil {
		in.duration = h
	}
}

// telemetry carries the span, instruments and logger of one run.
type telemetry struct {
	ctx    context.Context
	span   trace.Span
	logger *slog.Logger
	label  string
	runID  string
	inst   *instruments
}

// startTelemetry opens the "search.Run" span and looks up the instruments
// of the configured MeterProvider.
func startTelemetry(ctx context.Context, o Options) *telemetry {
	tracer := o.TracerProvider.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "search.Run",
		trace.WithAttributes(attribute.String("search.label", o.Label)),
	)

	return &telemetry{
		ctx:    ctx,
		span:   span,
		logger: o.Logger,
		label:  o.Label,
		inst:   instrumentsFor(o.MeterProvider),
	}
}

// attach tags the span with the run identifier.
func (t *telemetry) attach(runID string) {
	t.runID = runID
	t.span.SetAttributes(attribute.String("search.run_id", runID))
}

// fail ends the span of a run that could not start.
func (t *telemetry) fail(err error) {
	t.span.RecordError(err)
	t.span.SetStatus(codes.Error, err.Error())
	t.span.End()
	t.logger.LogAttrs(t.ctx, slog.LevelError, "search rejected",
		slog.String("label", t.label),
		slog.String("error", err.Error()),
	)
}

// finish records the outcome on every sink and ends the span.
func (t *telemetry) finish(rep Report, err error) {
	outcome := rep.Outcome.String()
	attrs := []attribute.KeyValue{
		attribute.String("search.outcome", outcome),
		attribute.Int("search.expanded", rep.Stats.Expanded),
		attribute.Int("search.generated", rep.Stats.Generated),
		attribute.Int("search.path_len", rep.PathLen),
	}
	t.span.SetAttributes(attrs...)
	t.span.AddEvent("search.finished", trace.WithAttributes(attribute.String("search.outcome", outcome)))
	if err != nil {
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, err.Error())
	} else {
		t.span.SetStatus(codes.Ok, "")
	}
	t.span.End()

	set := metric.WithAttributes(
		attribute.String("label", t.label),
		attribute.String("outcome", outcome),
	)
	if t.inst.runs != nil {
		t.inst.runs.Add(t.ctx, 1, set)
	}
	if t.inst.expanded != nil {
		t.inst.expanded.Record(t.ctx, int64(rep.Stats.Expanded), set)
	}
	if t.inst.duration != nil {
		t.inst.duration.Record(t.ctx, rep.Stats.Duration.Seconds(), set)
	}

	level := slog.LevelDebug
	switch {
	case err != nil:
		level = slog.LevelError
	case rep.Outcome == BudgetExhausted:
		level = slog.LevelWarn
	}
	logAttrs := []slog.Attr{
		slog.String("run_id", t.runID),
		slog.String("label", t.label),
		slog.String("outcome", outcome),
		slog.Int("expanded", rep.Stats.Expanded),
		slog.Int("generated", rep.Stats.Generated),
		slog.Int("path_len", rep.PathLen),
		slog.Duration("duration", rep.Stats.Duration.Round(time.Microsecond)),
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	t.logger.LogAttrs(t.ctx, level, "search finished", logAttrs...)
}

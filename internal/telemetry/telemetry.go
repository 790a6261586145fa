package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/straja-ai/docuguard/internal/redact"
)

const instrumentationName = "github.com/straja-ai/docuguard"

// Config controls telemetry setup.
type Config struct {
	Enabled  bool
	Endpoint string
	Protocol string // grpc | http
	Service  string
	Version  string
}

// Provider wires tracer/meter providers and exposes helpers.
type Provider struct {
	Enabled bool
	tracer  trace.Tracer
	meter   metric.Meter

	documentsCounter  metric.Int64Counter
	failuresCounter   metric.Int64Counter
	skippedCounter    metric.Int64Counter
	candidatesCounter metric.Int64Counter
	acceptedCounter   metric.Int64Counter
	rejectedCounter   metric.Int64Counter
	pipelineDuration  metric.Float64Histogram

	shutdownTraceProvider func(context.Context) error
	shutdownMeterProvider func(context.Context) error
}

// NewProvider configures OTLP trace and metric exporters. When disabled,
// returns a no-op provider.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cfg.Enabled {
		return New(tracenoop.NewTracerProvider(), noop.NewMeterProvider(), false), nil
	}

	redact.Logf("telemetry enabled (OpenTelemetry OTLP %s) endpoint=%s", strings.ToLower(cfg.Protocol), cfg.Endpoint)

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", cfg.Service),
			attribute.String("service.version", cfg.Version),
		),
	)
	if err != nil {
		return nil, err
	}

	var (
		traceExporter sdktrace.SpanExporter
		reader        sdkmetric.Reader
	)
	switch strings.ToLower(cfg.Protocol) {
	case "", "grpc":
		texp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, err
		}
		mexp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(cfg.Endpoint), otlpmetricgrpc.WithInsecure())
		if err != nil {
			return nil, err
		}
		traceExporter, reader = texp, sdkmetric.NewPeriodicReader(mexp)
	case "http":
		texp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
		if err != nil {
			return nil, err
		}
		mexp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(cfg.Endpoint), otlpmetrichttp.WithInsecure())
		if err != nil {
			return nil, err
		}
		traceExporter, reader = texp, sdkmetric.NewPeriodicReader(mexp)
	default:
		return nil, fmt.Errorf("unsupported telemetry protocol %q", cfg.Protocol)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)

	p := New(tp, mp, true)
	p.shutdownTraceProvider = tp.Shutdown
	p.shutdownMeterProvider = mp.Shutdown
	return p, nil
}

// New builds a provider on existing tracer and meter providers, e.g. a span
// recorder and a manual reader in tests.
func New(tp trace.TracerProvider, mp metric.MeterProvider, enabled bool) *Provider {
	p := &Provider{
		Enabled: enabled,
		tracer:  tp.Tracer(instrumentationName),
		meter:   mp.Meter(instrumentationName),
	}
	p.initInstruments()
	return p
}

func (p *Provider) initInstruments() {
	if p == nil {
		return
	}
	// Use meter to create instruments; ignore errors to keep telemetry best-effort.
	p.documentsCounter, _ = p.meter.Int64Counter("docuguard_documents_total")
	p.failuresCounter, _ = p.meter.Int64Counter("docuguard_document_failures_total")
	p.skippedCounter, _ = p.meter.Int64Counter("docuguard_mentions_skipped_total")
	p.candidatesCounter, _ = p.meter.Int64Counter("docuguard_candidate_spans_total")
	p.acceptedCounter, _ = p.meter.Int64Counter("docuguard_spans_accepted_total")
	p.rejectedCounter, _ = p.meter.Int64Counter("docuguard_spans_rejected_total")
	p.pipelineDuration, _ = p.meter.Float64Histogram("docuguard_pipeline_duration_ms")
}

// Shutdown flushes providers.
func (p *Provider) Shutdown(ctx context.Context) {
	if p == nil {
		return
	}
	if p.shutdownTraceProvider != nil {
		_ = p.shutdownTraceProvider(ctx)
	}
	if p.shutdownMeterProvider != nil {
		_ = p.shutdownMeterProvider(ctx)
	}
}

// StartSpan starts a span carrying only the attributes SafeAttributes lets
// through.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, trace.Span) {
	var tracer trace.Tracer = tracenoop.NewTracerProvider().Tracer("")
	if p != nil {
		tracer = p.tracer
	}
	return tracer.Start(ctx, name, trace.WithAttributes(SafeAttributes(attrs)...))
}

// EndSpan records the outcome of a span and ends it. Errors only set the
// status; their message is never attached.
func (p *Provider) EndSpan(sp trace.Span, err error, attrs map[string]interface{}) {
	if sp == nil {
		return
	}
	if kvs := SafeAttributes(attrs); len(kvs) > 0 {
		sp.SetAttributes(kvs...)
	}
	if err != nil {
		sp.SetStatus(codes.Error, "failed")
	}
	sp.End()
}

// DocumentStats is what one pipeline run reports.
type DocumentStats struct {
	Mentions   int
	Skipped    int
	Candidates int
	Accepted   int
	DurationMs float64
	Failed     bool
	Attrs      map[string]interface{}
}

// RecordDocument emits counters/histograms for one processed document.
func (p *Provider) RecordDocument(ctx context.Context, st DocumentStats) {
	if p == nil {
		return
	}
	opt := metric.WithAttributes(SafeAttributes(st.Attrs)...)
	p.documentsCounter.Add(ctx, 1, opt)
	p.pipelineDuration.Record(ctx, st.DurationMs, opt)
	if st.Skipped > 0 {
		p.skippedCounter.Add(ctx, int64(st.Skipped), opt)
	}
	if st.Failed {
		p.failuresCounter.Add(ctx, 1, opt)
		return
	}
	p.candidatesCounter.Add(ctx, int64(st.Candidates), opt)
	p.acceptedCounter.Add(ctx, int64(st.Accepted), opt)
	if rejected := st.Candidates - st.Accepted; rejected > 0 {
		p.rejectedCounter.Add(ctx, int64(rejected), opt)
	}
}

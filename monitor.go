package aescore

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package to OpenTelemetry providers.
const instrumentationName = "github.com/rbaliyan/aes-core"

// Monitor wraps a BlockTransformer with OpenTelemetry instrumentation: a
// block counter and a failure counter, both labelled with the direction and
// the stable failure code from FailureCode.
//
// The wrapped transformer stays free of instrumentation; a Monitor is the
// opt-in diagnostics surface for mode-of-operation layers that want to
// observe, in particular, feature_unsupported failures from an alternative
// backend. It is safe for concurrent use if the wrapped transformer is.
type Monitor struct {
	next     BlockTransformer
	tracer   trace.Tracer
	blocks   metric.Int64Counter
	failures metric.Int64Counter
}

// Compile-time interface check.
var _ BlockTransformer = (*Monitor)(nil)

// MonitorOption configures a Monitor.
type MonitorOption func(*monitorConfig)

type monitorConfig struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) MonitorOption {
	return func(c *monitorConfig) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) MonitorOption {
	return func(c *monitorConfig) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

// NewMonitor creates a Monitor around next.
func NewMonitor(next BlockTransformer, opts ...MonitorOption) (*Monitor, error) {
	if next == nil {
		return nil, fmt.Errorf("aescore: NewMonitor transformer is nil")
	}

	cfg := monitorConfig{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	blocks, err := meter.Int64Counter("aescore.blocks",
		metric.WithDescription("Block transforms attempted."),
		metric.WithUnit("{block}"))
	if err != nil {
		return nil, fmt.Errorf("aescore: failed to create block counter: %w", err)
	}
	failures, err := meter.Int64Counter("aescore.failures",
		metric.WithDescription("Block transforms that returned an error."),
		metric.WithUnit("{block}"))
	if err != nil {
		return nil, fmt.Errorf("aescore: failed to create failure counter: %w", err)
	}

	return &Monitor{
		next:     next,
		tracer:   cfg.tracerProvider.Tracer(instrumentationName),
		blocks:   blocks,
		failures: failures,
	}, nil
}

// EncryptBlock forwards to the wrapped transformer and records metrics.
func (m *Monitor) EncryptBlock(dst, src *Block) error {
	return m.record(context.Background(), Encrypt, dst, src)
}

// DecryptBlock forwards to the wrapped transformer and records metrics.
func (m *Monitor) DecryptBlock(dst, src *Block) error {
	return m.record(context.Background(), Decrypt, dst, src)
}

// TransformBlocks runs one transform per block of src into dst under a
// single span, stopping at the first failure. dst and src must be the same
// length; dst[i] may alias src[i]. Blocks are independent; this is a batch
// convenience for mode layers, not a chaining mode.
func (m *Monitor) TransformBlocks(ctx context.Context, dir Direction, dst, src []Block) error {
	if len(dst) != len(src) {
		return fmt.Errorf("aescore: TransformBlocks length mismatch: dst %d, src %d", len(dst), len(src))
	}

	ctx, span := m.tracer.Start(ctx, "aescore.TransformBlocks",
		trace.WithAttributes(
			attribute.String("aes.direction", dir.String()),
			attribute.Int("aes.blocks", len(src)),
		))
	defer span.End()

	for i := range src {
		if err := m.record(ctx, dir, &dst[i], &src[i]); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, FailureCode(err))
			return err
		}
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (m *Monitor) record(ctx context.Context, dir Direction, dst, src *Block) error {
	dirAttr := attribute.String("aes.direction", dir.String())
	err := Transform(dir, m.next, dst, src)
	m.blocks.Add(ctx, 1, metric.WithAttributes(dirAttr))
	if err != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(
			dirAttr,
			attribute.String("aes.failure_code", FailureCode(err)),
		))
	}
	return err
}

package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/pushgen/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// Enabled turns on OTLP export. When false InitMeter returns a provider
	// without readers and leaves the global provider untouched.
	Enabled bool
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		Enabled:        true,
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	if !config.Enabled {
		logger.Debug("metrics disabled", logger.Fields("service", config.ServiceName))
		return sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)), nil
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// RunMetrics holds the instruments recorded for every scenario run.
type RunMetrics struct {
	runs     metric.Int64Counter
	values   metric.Int64Counter
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// NewRunMetrics creates the run instruments on the given meter.
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	runs, err := meter.Int64Counter("pushgen.runs",
		metric.WithDescription("Scenario runs by scenario and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pushgen.runs counter: %w", err)
	}

	values, err := meter.Int64Counter("pushgen.values",
		metric.WithDescription("Values delivered to scenario sinks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pushgen.values counter: %w", err)
	}

	duration, err := meter.Float64Histogram("pushgen.run.duration",
		metric.WithDescription("Duration of scenario runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pushgen.run.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("pushgen.errors",
		metric.WithDescription("Scenario failures by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pushgen.errors counter: %w", err)
	}

	return &RunMetrics{
		runs:     runs,
		values:   values,
		duration: duration,
		errors:   errorTotal,
	}, nil
}

// RecordRun records one finished scenario run.
func (m *RunMetrics) RecordRun(ctx context.Context, scenario, result string, values int64, duration time.Duration) {
	name := attribute.String("scenario", scenario)
	m.runs.Add(ctx, 1, metric.WithAttributes(name, attribute.String("result", result)))
	m.values.Add(ctx, values, metric.WithAttributes(name))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(name))
}

// RecordError records a failed run by error code.
func (m *RunMetrics) RecordError(ctx context.Context, scenario, code string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scenario", scenario),
		attribute.String("code", code),
	))
}

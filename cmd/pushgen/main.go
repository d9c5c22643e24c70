// Command pushgen runs the generator self-check scenarios and reports the
// results through structured logs, traces and metrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/pushgen/config"
	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/logger"
	"github.com/kbukum/pushgen/observability"
	"github.com/kbukum/pushgen/scenario"
	"github.com/kbukum/pushgen/version"
)

const (
	serviceName = "pushgen"
	envPrefix   = "PUSHGEN"
)

type flags struct {
	configFile  string
	envFile     string
	scenarios   []string
	runID       string
	failFast    bool
	showVersion bool
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	fs := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	fs.StringVarP(&f.configFile, "config", "c", "", "path to config.yml")
	fs.StringVar(&f.envFile, "env-file", "", "path to a .env file")
	fs.StringSliceVarP(&f.scenarios, "scenario", "s", nil, "scenarios to run (default all)")
	fs.StringVar(&f.runID, "run-id", "", "fixed run ID (UUID)")
	fs.BoolVar(&f.failFast, "fail-fast", false, "stop at the first failing scenario")
	fs.BoolVarP(&f.showVersion, "version", "v", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, errors.InvalidConfig("flags", err)
	}
	return f, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errors.ExitCode(err)
	}
	if f.showVersion {
		fmt.Println(version.Get().Full())
		return errors.ExitOK
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errors.ExitCode(err)
	}

	logger.Init(&cfg.Logging)
	logger.RegisterDefaults("runner", "telemetry")
	log := logger.WithComponent("main")

	info := version.Get()
	log.Info("starting", info.Fields())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, metrics, err := initTelemetry(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("telemetry setup failed")
		return errors.ExitCode(err)
	}
	defer shutdown()

	selected, err := scenario.Select(scenario.Builtin(cfg.Workload), cfg.Scenarios)
	if err != nil {
		log.WithError(err).Error("invalid scenario selection")
		return errors.ExitCode(err)
	}

	runner, err := scenario.NewRunner(
		scenario.WithLogger(logger.Get("runner")),
		scenario.WithMetrics(metrics),
		scenario.WithRunID(cfg.RunID),
		scenario.WithFailFast(cfg.FailFast),
	)
	if err != nil {
		log.WithError(err).Error("runner setup failed")
		return errors.ExitCode(err)
	}

	sum, err := runner.Run(ctx, selected)
	fields := logger.Fields(
		logger.FieldRunID, sum.RunID,
		"passed", sum.Passed,
		"failed", sum.Failed,
	)
	if err != nil {
		log.WithError(err).Error("self-check failed", fields)
		return errors.ExitCode(err)
	}
	log.Info("self-check passed", fields)
	return errors.ExitOK
}

// loadConfig reads config.yml, .env and PUSHGEN_* variables, then applies
// flag overrides.
func loadConfig(f *flags) (*Config, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if len(f.scenarios) > 0 {
		cfg.Scenarios = f.scenarios
	}
	if f.runID != "" {
		cfg.RunID = f.runID
	}
	if f.failFast {
		cfg.FailFast = true
	}
	cfg.Version = version.Resolve(cfg.Version)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initTelemetry sets up tracing and metrics and returns a function that
// flushes and shuts both down.
func initTelemetry(ctx context.Context, cfg *Config) (func(), *observability.RunMetrics, error) {
	log := logger.Get("telemetry")

	tp, err := observability.InitTracer(ctx, cfg.Observability.TracerConfig(cfg.Name, cfg.Version, cfg.Environment))
	if err != nil {
		return nil, nil, errors.Internal(err)
	}
	meterCfg := cfg.Observability.MeterConfig(cfg.Name, cfg.Version, cfg.Environment)
	mp, err := observability.InitMeter(ctx, &meterCfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, errors.Internal(err)
	}

	metrics, err := observability.NewRunMetrics(mp.Meter(serviceName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, nil, errors.Internal(err)
	}

	shutdown := func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("tracer shutdown")
		}
		if err := mp.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("meter shutdown")
		}
	}
	return shutdown, metrics, nil
}

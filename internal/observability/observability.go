package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/processors/minsev"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// instrumentationScope names the logger handed to the OpenTelemetry bridge.
const instrumentationScope = "github.com/florianilch/git-credential-lookup"

// Options configures Instrument.
type Options struct {
	Writer   io.Writer
	Level    slog.Level
	Format   string // text|json
	Exporter string // none|stdout|otlphttp|otlpgrpc
}

// ShutdownFunc flushes and stops the log pipeline.
type ShutdownFunc func(context.Context) error

// Instrument installs the default slog logger. Every record carries an invocation_id
// so lines of one helper run can be grouped. The returned ShutdownFunc must be called
// before exit to flush exported records.
func Instrument(ctx context.Context, opts Options) (ShutdownFunc, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	switch opts.Format {
	case "", "text":
		handler = slog.NewTextHandler(opts.Writer, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(opts.Writer, handlerOpts)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", opts.Format)
	}

	shutdown := func(context.Context) error { return nil }

	if opts.Exporter != "" && opts.Exporter != "none" {
		exporter, err := newExporter(ctx, opts.Exporter, opts.Writer)
		if err != nil {
			return nil, fmt.Errorf("failed to create log exporter: %w", err)
		}

		provider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(minsev.NewLogProcessor(sdklog.NewBatchProcessor(exporter), severity(opts.Level))),
		)
		global.SetLoggerProvider(provider)

		// Report pipeline failures through the local handler only, never back into the pipeline
		fallback := slog.New(handler)
		otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
			fallback.Warn("opentelemetry error", "error", err)
		}))

		handler = slogmulti.Fanout(handler, otelslog.NewHandler(instrumentationScope, otelslog.WithLoggerProvider(provider)))
		shutdown = provider.Shutdown
	}

	logger := slog.New(handler).With("invocation_id", uuid.NewString())
	slog.SetDefault(logger)

	return shutdown, nil
}

func newExporter(ctx context.Context, name string, w io.Writer) (sdklog.Exporter, error) {
	switch name {
	case "stdout":
		return stdoutlog.New(stdoutlog.WithWriter(w))
	case "otlphttp":
		return otlploghttp.New(ctx)
	case "otlpgrpc":
		return otlploggrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported exporter: %s", name)
	}
}

// severity maps a slog level onto the closest OpenTelemetry severity.
func severity(level slog.Level) minsev.Severity {
	switch {
	case level <= slog.LevelDebug:
		return minsev.SeverityDebug
	case level <= slog.LevelInfo:
		return minsev.SeverityInfo
	case level <= slog.LevelWarn:
		return minsev.SeverityWarn
	default:
		return minsev.SeverityError
	}
}

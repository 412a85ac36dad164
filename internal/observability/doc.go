// Package observability configures process-wide structured logging.
//
// Records always go to a text or JSON slog handler on the given writer (stderr for the CLI,
// since stdout belongs to the credential protocol). Optionally they are also bridged into an
// OpenTelemetry log pipeline and exported to stdout-style output or an OTLP collector:
//
//	shutdown, err := observability.Instrument(ctx, observability.Options{
//		Writer:   os.Stderr,
//		Level:    slog.LevelDebug,
//		Format:   "json",
//		Exporter: "otlphttp",
//	})
//	defer shutdown(context.Background())
//
// OTLP endpoints, headers and timeouts come from the standard OTEL_EXPORTER_OTLP_* variables.
package observability

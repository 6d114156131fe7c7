package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/mikkoval/alarmgap/internal/runner"
	"github.com/mikkoval/alarmgap/internal/telemetry"
)

var (
	flagInterval    time.Duration
	flagMetricsAddr string
)

// daemonCmd represents the daemon command
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Audit continuously on an interval",
	Long: `Run alarm gap audits on a fixed interval and expose operational
metrics on a Prometheus /metrics endpoint.

Unlike the one-shot audit, a failed collection does not stop the
daemon: the error is logged and counted, and the next tick runs a
fresh audit.`,
	Example: `  alarmgap daemon                          # audit every hour
  alarmgap daemon --interval 15m           # audit every 15 minutes
  alarmgap daemon --metrics :9091          # move the metrics endpoint`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)

	daemonCmd.Flags().DurationVar(&flagInterval, "interval", time.Hour, "Audit interval")
	daemonCmd.Flags().StringVar(&flagMetricsAddr, "metrics", ":9090", "Metrics server address")
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	// OTEL metrics with Prometheus exporter
	promExporter, err := prometheus.New()
	if err != nil {
		return err
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(promExporter)))

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return err
	}

	r, err := buildRunner(cmd.Context(), metrics)
	if err != nil {
		return err
	}

	log.Info().
		Str("region", flagRegion).
		Dur("interval", flagInterval).
		Str("metrics", flagMetricsAddr).
		Msg("alarmgap daemon starting")

	var g run.Group

	g.Add(run.SignalHandler(cmd.Context(), os.Interrupt, syscall.SIGTERM))

	ctx, cancel := context.WithCancel(cmd.Context())
	g.Add(func() error {
		return auditLoop(ctx, r, metrics)
	}, func(error) {
		cancel()
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: flagMetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	g.Add(func() error {
		log.Info().Str("addr", flagMetricsAddr).Msg("starting metrics server")
		return srv.ListenAndServe()
	}, func(error) {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	})

	err = g.Run()
	if errors.Is(err, http.ErrServerClosed) || isSignalError(err) {
		log.Info().Msg("shutting down")
		return nil
	}
	return err
}

// auditLoop runs one audit immediately, then one per tick.
func auditLoop(ctx context.Context, r *runner.Runner, metrics *telemetry.Metrics) error {
	runOnce(ctx, r, metrics)

	ticker := time.NewTicker(flagInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runOnce(ctx, r, metrics)
		case <-ctx.Done():
			return nil
		}
	}
}

// runOnce performs a single audit pass, isolating failures to this tick.
func runOnce(ctx context.Context, r *runner.Runner, metrics *telemetry.Metrics) {
	start := time.Now()

	result, err := r.Run(ctx)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAudit(ctx, "error", elapsed)
		log.Error().Err(err).Msg("audit failed")
		return
	}

	metrics.RecordAudit(ctx, "ok", elapsed)
	metrics.RecordGapsFound(ctx, int64(result.GapsFound))
	log.Info().Int("gaps", result.GapsFound).Str("s3_report", result.S3Report).Msg("audit complete")
}

func isSignalError(err error) bool {
	var sigErr run.SignalError
	return errors.As(err, &sigErr)
}

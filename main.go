package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hmichalski/cbre-programming-task/config"
	"github.com/hmichalski/cbre-programming-task/logging"
	"github.com/hmichalski/cbre-programming-task/providers"
	"github.com/hmichalski/cbre-programming-task/spreadsheet"
)

type options struct {
	latitude  float64
	longitude float64
	outputDir string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := options{
		latitude:  cfg.Latitude,
		longitude: cfg.Longitude,
		outputDir: cfg.OutputDir,
	}

	rootCmd := &cobra.Command{
		Use:           "weather-export",
		Short:         "Export current weather conditions to a spreadsheet",
		Long:          "Fetches current conditions from OpenWeatherMap and writes them to weather_data_<city>.xlsx",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			runID := uuid.NewString()
			logger := logging.New(cfg.LogLevel, zapcore.AddSync(out)).With(zap.String("run_id", runID))
			defer func() { _ = logger.Sync() }()

			ctx := providers.WithCorrelationID(cmd.Context(), runID)
			provider := providers.NewOpenWeatherProvider(cfg.APIKey, cfg.APIURL, cfg.Timeout)

			// failures are reported on stdout; the exit status stays 0
			_ = run(ctx, provider, opts, out, logger)
			return nil
		},
	}

	rootCmd.Flags().Float64Var(&opts.latitude, "lat", opts.latitude, "latitude in degrees")
	rootCmd.Flags().Float64Var(&opts.longitude, "lon", opts.longitude, "longitude in degrees")
	rootCmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory the spreadsheet is written to")

	return rootCmd
}

// run performs one fetch-print-write cycle and returns the first failure.
func run(ctx context.Context, provider providers.Provider, opts options, out io.Writer, logger *zap.Logger) error {
	logger.Debug("fetching weather",
		zap.String("provider", provider.Name()),
		zap.Float64("lat", opts.latitude),
		zap.Float64("lon", opts.longitude),
	)

	record, err := provider.GetWeather(ctx, opts.latitude, opts.longitude)
	if err != nil {
		logger.Error("weather fetch failed",
			zap.String("kind", string(providers.KindOf(err))),
			zap.Error(err),
		)
		fmt.Fprintln(out, "Failed to retrieve or process weather data.")
		return err
	}

	fmt.Fprintln(out, "Weather data:")
	for _, field := range record.Fields() {
		fmt.Fprintf(out, "%s: %v\n", field.Key, field.Value)
	}

	path, err := spreadsheet.Write(record, opts.outputDir, logger)
	if err != nil {
		logger.Error("spreadsheet write failed", zap.Error(err))
		return err
	}

	logger.Info("spreadsheet saved", zap.String("path", path))
	return nil
}

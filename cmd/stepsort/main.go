// Command stepsort sorts a shuffled list of integers with one of five
// engines and shows every intermediate state as a bar chart in the
// terminal, with a running count of operations. With SORT_MODE=tally it
// runs all engines over the same input and prints their operation counts.
//
// All configuration comes from SORT_* environment variables, optionally
// loaded from the files listed in SORT_ENV_FILE. SORT_INTERACTIVE=true
// asks for the size and engine instead. SORT_VERIFY=true checks every
// snapshot for lost values, which is only practical for small inputs.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/logger"
	"github.com/amp-labs/stepsort/shutdown"
	"github.com/amp-labs/stepsort/startup"
	"github.com/amp-labs/stepsort/telemetry"
)

const appName = "stepsort"

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	ctx, err := startup.ConfigureEnvironment(ctx)
	if err != nil {
		logger.Fatal("unable to load environment files", "error", err)
	}

	logger.ConfigureLogging(ctx, appName, logger.WithOutput(os.Stderr))

	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	runningEnv := envutil.String(ctx, "ENVIRONMENT", envutil.Default("local")).ValueOrElse("local")

	otelCfg, err := telemetry.LoadConfigFromEnv(ctx, runningEnv)
	if err != nil {
		logger.Fatal("invalid telemetry configuration", "error", err)
	}

	if err := telemetry.Initialize(ctx, otelCfg); err != nil {
		logger.Fatal("unable to initialize telemetry", "error", err)
	}

	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			logger.Get(ctx).Error("telemetry shutdown failed", "error", err)
		}
	}()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Get(ctx).Info("interrupted")

			return
		}

		logger.Get(ctx).Error("stepsort failed", "error", err)
		shutdown.Shutdown()
		os.Exit(1) //nolint:gocritic
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"smashup-backend/lib/restyutil"
	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/lib/serviceutil"
	"smashup-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	err := telemetry.SetupFromEnv(ctx, "smashup-server")
	if os.IsNotExist(err) {
		slog.WarnContext(ctx, "no telemetry.json5 found, traces will not be exported")
	} else if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	} else {
		go func() {
			<-ctx.Done()
			telemetry.Shutdown(context.Background())
		}()
	}
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return
	}

	smashwiki.SetRestyInstrumentOutput(
		restyutil.NewFilesystemOutput(".dev/resty/smashwiki"),
	)
}

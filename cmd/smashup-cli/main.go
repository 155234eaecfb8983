package main

import (
	"os"

	"smashup-backend/cmd/smashup-cli/commands"
	"smashup-backend/lib/serviceutil"
	"smashup-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	err := telemetry.SetupFromEnv(ctx, "smashup-cli")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to set up telemetry", err)
	}

	commands.ExecuteContext(ctx)
}

package commands

import (
	"context"
	"fmt"
	"os"

	"smashup-backend/lib/serviceutil"
	"smashup-backend/lib/sqliteutil"
	"smashup-backend/lib/telemetry"
	"smashup-backend/services/carddata"
	"smashup-backend/services/carddata/db"

	"github.com/spf13/cobra"
)

var (
	rootDb      *string
	rootVerbose *bool
)

var rootCmd = &cobra.Command{
	Use:   "smashup-cli",
	Short: "smashup-cli scrapes the Smash Up wiki and inspects the resulting card database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*rootVerbose)
	},
}

func init() {
	rootDb = rootCmd.PersistentFlags().String("db", "data/smashup.db", "The sqlite database to read and write card data from.")
	rootVerbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openData opens the card database every subcommand works against. The
// returned func closes it.
func openData() (carddata.Service, func()) {
	database, err := sqliteutil.OpenWithSchema(db.Schema, *rootDb)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return carddata.NewService(database), func() { database.Close() }
}

package commands

import (
	"fmt"
	"os"

	"smashup-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var clearYes *bool

func init() {
	clearYes = clearCmd.Flags().Bool("yes", false, "Confirm deleting every table.")
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear --yes",
	Short: "Deletes every row from the database.",
	Run: func(cmd *cobra.Command, args []string) {
		if !*clearYes {
			fmt.Fprintln(os.Stderr, "refusing to clear the database without --yes")
			os.Exit(1)
		}

		data, cleanup := openData()
		defer cleanup()

		err := data.ClearAll(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to clear database", err)
		}
		fmt.Println("Database cleared successfully")
	},
}

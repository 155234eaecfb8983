package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"smashup-backend/lib/serviceutil"
	"smashup-backend/services/carddata"

	"github.com/spf13/cobra"
)

var exportOut *string

func init() {
	exportOut = exportCmd.Flags().String("out", "", "Write the export to a file instead of stdout.")
	rootCmd.AddCommand(exportCmd)
}

// exportDocument adds export metadata on top of the table dump.
type exportDocument struct {
	ExportTimestamp string `json:"export_timestamp"`
	Version         string `json:"version"`
	carddata.Export
}

var exportCmd = &cobra.Command{
	Use:   "export [--out <path/to/output.json>]",
	Short: "Dumps the entire database as JSON.",
	Run: func(cmd *cobra.Command, args []string) {
		data, cleanup := openData()
		defer cleanup()

		export, err := data.ExportAll(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to export database", err)
		}

		doc := exportDocument{
			ExportTimestamp: time.Now().UTC().Format(time.RFC3339),
			Version:         "1.0.0",
			Export:          export,
		}
		encoded, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to encode export", err)
		}

		if *exportOut == "" {
			fmt.Println(string(encoded))
			return
		}

		err = os.WriteFile(*exportOut, encoded, 0644)
		if err != nil {
			serviceutil.Fatal("failed to write export", err)
		}
		fmt.Printf("Exported database to %s\n", *exportOut)
	},
}

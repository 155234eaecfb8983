package commands

import (
	"smashup-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints row counts for every table.",
	Run: func(cmd *cobra.Command, args []string) {
		data, cleanup := openData()
		defer cleanup()

		stats, err := data.CountStats(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to count rows", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Table", "Rows"})
		t.AppendRow(table.Row{"sets", stats.Sets})
		t.AppendRow(table.Row{"factions", stats.Factions})
		t.AppendRow(table.Row{"cards", stats.Cards})
		t.AppendRow(table.Row{"minions", stats.Minions})
		t.AppendRow(table.Row{"actions", stats.Actions})
		t.AppendRow(table.Row{"bases", stats.Bases})
		t.Render()
	},
}

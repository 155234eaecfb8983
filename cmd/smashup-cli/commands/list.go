package commands

import (
	"fmt"
	"os"

	"smashup-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	listCmd.AddCommand(listSetsCmd)
	listCmd.AddCommand(listFactionsCmd)
	listCmd.AddCommand(listBasesCmd)
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists scraped data from the database.",
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var listSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Lists all sets in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		data, cleanup := openData()
		defer cleanup()

		sets, err := data.Sets(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list sets", err)
		}
		if len(sets) == 0 {
			fmt.Println("No sets found in database. Run 'scrape all' first.")
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "URL"})
		for _, set := range sets {
			t.AppendRow(table.Row{set.SetID, set.SetName, set.SetUrl})
		}
		t.Render()
	},
}

var listFactionsCmd = &cobra.Command{
	Use:   "factions <set id>",
	Short: "Lists the factions recorded for a set.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, cleanup := openData()
		defer cleanup()

		factions, err := data.FactionsBySet(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to list factions", err)
		}
		if len(factions) == 0 {
			fmt.Printf("No factions found for set %s\n", args[0])
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "URL"})
		for _, faction := range factions {
			t.AppendRow(table.Row{faction.FactionID, faction.FactionName, faction.FactionUrl})
		}
		t.Render()
	},
}

var listBasesCmd = &cobra.Command{
	Use:   "bases",
	Short: "Lists all base cards in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		data, cleanup := openData()
		defer cleanup()

		bases, err := data.Bases(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list bases", err)
		}
		if len(bases) == 0 {
			fmt.Println("No bases found in database. Run 'scrape bases' first.")
			return
		}

		t := newTable()
		t.SetColumnConfigs([]table.ColumnConfig{{Name: "Description", WidthMax: 60}})
		t.AppendHeader(table.Row{"Name", "Power", "VPs", "Description"})
		for _, base := range bases {
			vps := fmt.Sprintf("%d/%d/%d", base.FirstPlace, base.SecondPlace, base.ThirdPlace)
			t.AppendRow(table.Row{base.BaseName, base.BasePower, vps, base.BaseDesc})
		}
		t.Render()
	},
}

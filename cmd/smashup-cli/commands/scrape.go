package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"smashup-backend/lib/restyutil"
	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/lib/serviceutil"
	"smashup-backend/services/carddata"
	"smashup-backend/services/carddata/scraper"

	"github.com/spf13/cobra"
)

var scrapeFactionSet *string

func init() {
	scrapeFactionSet = scrapeFactionCmd.Flags().String("set", "", "The name of the set the faction belongs to.")

	scrapeCmd.AddCommand(scrapeAllCmd)
	scrapeCmd.AddCommand(scrapeSetCmd)
	scrapeCmd.AddCommand(scrapeFactionCmd)
	scrapeCmd.AddCommand(scrapeBasesCmd)
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes the wiki and writes the results to the database.",
}

func newScraper(ctx context.Context, data carddata.Service) scraper.Scraper {
	client, err := smashwiki.NewClient(ctx, smashwiki.ClientOptions{})
	if err != nil {
		serviceutil.Fatal("failed to initialize wiki client", err)
	}
	smashwiki.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/smashwiki"))

	return scraper.NewScraper(client, data, scraper.Options{})
}

// printResult reports a scrape outcome on stdout and exits nonzero when
// the scrape failed.
func printResult(res scraper.Result) {
	fmt.Println(res.Message)
	fmt.Println("items processed:", res.ItemsProcessed)
	for _, scrapeErr := range res.Errors {
		fmt.Println("  -", scrapeErr)
	}
	if !res.Success {
		os.Exit(1)
	}
}

func runScrape(ctx context.Context, scrape func(ctx context.Context, s scraper.Scraper) scraper.Result) {
	data, cleanup := openData()
	defer cleanup()

	s := newScraper(ctx, data)

	t1 := time.Now()
	res := scrape(ctx, s)
	t2 := time.Now()

	slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())
	printResult(res)
}

var scrapeAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Scrapes every set, faction, card and base on the wiki.",
	Run: func(cmd *cobra.Command, args []string) {
		runScrape(cmd.Context(), func(ctx context.Context, s scraper.Scraper) scraper.Result {
			return s.ScrapeAll(ctx)
		})
	},
}

var scrapeSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Scrapes a single set and registers its factions.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScrape(cmd.Context(), func(ctx context.Context, s scraper.Scraper) scraper.Result {
			return s.ScrapeSet(ctx, args[0])
		})
	},
}

var scrapeFactionCmd = &cobra.Command{
	Use:   "faction <name> [--set <name>]",
	Short: "Scrapes a single faction and its cards.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScrape(cmd.Context(), func(ctx context.Context, s scraper.Scraper) scraper.Result {
			return s.ScrapeFactionInSet(ctx, args[0], *scrapeFactionSet)
		})
	},
}

var scrapeBasesCmd = &cobra.Command{
	Use:   "bases",
	Short: "Scrapes the base card listing.",
	Run: func(cmd *cobra.Command, args []string) {
		runScrape(cmd.Context(), func(ctx context.Context, s scraper.Scraper) scraper.Result {
			return s.ScrapeBases(ctx)
		})
	},
}

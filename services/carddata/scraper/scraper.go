package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"smashup-backend/lib/cardtext"
	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/services/carddata"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Result reports the outcome of one scrape operation. A card or base
// that fails to parse lands in Errors and never aborts the page it
// came from; Success only turns false when the whole operation
// produced nothing.
type Result struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	ItemsProcessed int      `json:"items_processed"`
	Errors         []string `json:"errors"`
}

func successResult(message string, items int, errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{
		Success:        true,
		Message:        message,
		ItemsProcessed: items,
		Errors:         errs,
	}
}

func errorResult(message string, errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

type Options struct {
	Gallery smashwiki.GalleryStrategy
	Window  smashwiki.BaseWindow
}

// Scraper walks wiki pages sequentially and funnels every extracted
// record into the carddata service. The politeness delay between
// fetches lives in the wiki client.
type Scraper struct {
	client  *smashwiki.Client
	data    carddata.Service
	gallery smashwiki.GalleryStrategy
	window  smashwiki.BaseWindow
}

func NewScraper(client *smashwiki.Client, data carddata.Service, opts Options) Scraper {
	if opts.Gallery == "" {
		opts.Gallery = smashwiki.GalleryByClass
	}
	if opts.Window == (smashwiki.BaseWindow{}) {
		opts.Window = smashwiki.DefaultBaseWindow
	}
	return Scraper{
		client:  client,
		data:    data,
		gallery: opts.Gallery,
		window:  opts.Window,
	}
}

func (s Scraper) storeCard(ctx context.Context, factionId string, block smashwiki.CardBlock) error {
	kind, err := cardtext.Classify(block.Text)
	if err != nil {
		return err
	}
	switch kind {
	case cardtext.KindMinion:
		minion, err := cardtext.ParseMinion(block.Label, block.Text)
		if err != nil {
			return err
		}
		return s.data.InsertMinion(ctx, factionId, minion)
	default:
		action, err := cardtext.ParseAction(block.Label, block.Text)
		if err != nil {
			return err
		}
		return s.data.InsertAction(ctx, factionId, action)
	}
}

// ScrapeFaction stores the faction row and every card extracted from
// its wiki page. An empty setId links the faction to a generated
// placeholder set.
func (s Scraper) ScrapeFaction(ctx context.Context, factionName, setId string) Result {
	ctx, span := tracer.Start(ctx, "ScrapeFaction")
	defer span.End()
	span.SetAttributes(attribute.String("faction", factionName))

	if setId == "" {
		setId = carddata.GenerateId("unknown_set")
		slog.WarnContext(ctx, "no set id provided, using generated id", "faction", factionName)
	}

	factionId, err := s.data.InsertFaction(ctx, factionName, s.client.FactionUrl(factionName), setId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Faction scraping failed for %s: %s", factionName, err), []string{err.Error()})
	}

	doc, err := s.client.FactionPage(ctx, factionName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Could not fetch faction page for %s", factionName), nil)
	}

	scraped := 0
	var errs []string
	for _, block := range smashwiki.CardBlocks(doc) {
		err := s.storeCard(ctx, factionId, block)
		if err != nil {
			slog.WarnContext(ctx, "failed to scrape card", "faction", factionName, "card", block.Label, "err", err)
			errs = append(errs, fmt.Sprintf("%s: %s", block.Label, err))
			continue
		}
		scraped++
	}
	slog.InfoContext(ctx, "scraped faction", "faction", factionName, "cards", scraped, "failed", len(errs))

	if scraped == 0 {
		span.SetStatus(codes.Error, "no cards found")
		return errorResult(fmt.Sprintf("No cards found for faction %s", factionName), errs)
	}
	return successResult(
		fmt.Sprintf("Successfully scraped faction %s with %d cards", factionName, scraped),
		1+scraped,
		errs,
	)
}

// ScrapeFactionInSet resolves an optional set name to a stored set
// row before scraping the faction.
func (s Scraper) ScrapeFactionInSet(ctx context.Context, factionName, setName string) Result {
	setId := ""
	if setName != "" {
		var err error
		setId, err = s.data.InsertSet(ctx, setName, s.client.SetUrl(setName))
		if err != nil {
			return errorResult(fmt.Sprintf("Faction scraping failed for %s: %s", factionName, err), []string{err.Error()})
		}
	}
	return s.ScrapeFaction(ctx, factionName, setId)
}

// ScrapeSet stores the set row and a faction row for every entry in
// the set page's gallery. Cards are left alone, ScrapeSetDeep
// descends into them.
func (s Scraper) ScrapeSet(ctx context.Context, setName string) Result {
	ctx, span := tracer.Start(ctx, "ScrapeSet")
	defer span.End()
	span.SetAttributes(attribute.String("set", setName))

	setId, err := s.data.InsertSet(ctx, setName, s.client.SetUrl(setName))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Set scraping failed for %s: %s", setName, err), []string{err.Error()})
	}

	doc, err := s.client.SetPage(ctx, setName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Could not fetch set page for %s", setName), nil)
	}

	names, err := smashwiki.SetFactions(doc, s.gallery)
	if errors.Is(err, smashwiki.ErrNoGallery) {
		slog.WarnContext(ctx, "no faction gallery found", "set", setName)
		names = nil
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Set scraping failed for %s: %s", setName, err), []string{err.Error()})
	}

	stored := 0
	var errs []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		_, err := s.data.InsertFaction(ctx, name, s.client.FactionUrl(name), setId)
		if err != nil {
			slog.WarnContext(ctx, "failed to store faction", "set", setName, "faction", name, "err", err)
			errs = append(errs, fmt.Sprintf("%s: %s", name, err))
			continue
		}
		stored++
	}

	return successResult(
		fmt.Sprintf("Successfully scraped set %s with %d factions", setName, stored),
		1+stored,
		errs,
	)
}

// ScrapeSetDeep scrapes a set and then every faction it lists,
// including cards. One bad faction page never stops the rest.
func (s Scraper) ScrapeSetDeep(ctx context.Context, setName string) Result {
	ctx, span := tracer.Start(ctx, "ScrapeSetDeep")
	defer span.End()
	span.SetAttributes(attribute.String("set", setName))

	setId, err := s.data.InsertSet(ctx, setName, s.client.SetUrl(setName))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Set scraping failed for %s: %s", setName, err), []string{err.Error()})
	}

	doc, err := s.client.SetPage(ctx, setName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Could not fetch set page for %s", setName), nil)
	}

	names, err := smashwiki.SetFactions(doc, s.gallery)
	if errors.Is(err, smashwiki.ErrNoGallery) {
		slog.WarnContext(ctx, "no faction gallery found", "set", setName)
		names = nil
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult(fmt.Sprintf("Set scraping failed for %s: %s", setName, err), []string{err.Error()})
	}

	items := 1
	factions := 0
	var errs []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		res := s.ScrapeFaction(ctx, name, setId)
		items += res.ItemsProcessed
		errs = append(errs, res.Errors...)
		if !res.Success {
			slog.WarnContext(ctx, "faction scrape failed", "set", setName, "faction", name, "message", res.Message)
			errs = append(errs, fmt.Sprintf("%s: %s", name, res.Message))
			continue
		}
		factions++
	}

	return successResult(
		fmt.Sprintf("Successfully scraped set %s with %d factions", setName, factions),
		items,
		errs,
	)
}

// ScrapeBases walks the shared bases listing, restricted to the
// configured line window.
func (s Scraper) ScrapeBases(ctx context.Context) Result {
	ctx, span := tracer.Start(ctx, "ScrapeBases")
	defer span.End()

	doc, err := s.client.BasesPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult("Could not fetch bases page", nil)
	}

	stored := 0
	var errs []string
	for _, line := range smashwiki.BaseLines(doc, s.window) {
		base, err := cardtext.ParseBase(line.Text)
		if err == nil {
			err = s.data.InsertBase(ctx, base)
		}
		if err != nil {
			slog.WarnContext(ctx, "failed to scrape base", "index", line.Index, "err", err)
			errs = append(errs, fmt.Sprintf("index %d: %s", line.Index, err))
			continue
		}
		stored++
	}
	slog.InfoContext(ctx, "scraped bases", "stored", stored, "failed", len(errs))

	if stored == 0 && len(errs) > 0 {
		span.SetStatus(codes.Error, "no bases found")
		return errorResult("No bases found on the bases page", errs)
	}
	return successResult(fmt.Sprintf("Successfully scraped %d bases", stored), stored, errs)
}

// ScrapeAll discovers every set on the wiki's category page, scrapes
// each one deeply, then the bases listing.
func (s Scraper) ScrapeAll(ctx context.Context) Result {
	ctx, span := tracer.Start(ctx, "ScrapeAll")
	defer span.End()

	doc, err := s.client.SetsCategoryPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorResult("Could not fetch the sets category page", nil)
	}

	sets := smashwiki.AvailableSets(doc)
	slog.InfoContext(ctx, "discovered sets", "count", len(sets))

	items := 0
	var errs []string
	for _, setName := range sets {
		res := s.ScrapeSetDeep(ctx, setName)
		items += res.ItemsProcessed
		errs = append(errs, res.Errors...)
		if !res.Success {
			slog.WarnContext(ctx, "set scrape failed", "set", setName, "message", res.Message)
			errs = append(errs, fmt.Sprintf("%s: %s", setName, res.Message))
		}
	}

	bases := s.ScrapeBases(ctx)
	items += bases.ItemsProcessed
	errs = append(errs, bases.Errors...)
	if !bases.Success {
		errs = append(errs, bases.Message)
	}

	if items == 0 {
		span.SetStatus(codes.Error, "nothing scraped")
		return errorResult("Full scraping completed with no items processed", errs)
	}
	return successResult(fmt.Sprintf("Full scraping completed: %d items processed", items), items, errs)
}

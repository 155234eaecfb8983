package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/lib/testutil"
	"smashup-backend/services/carddata"
	"smashup-backend/services/carddata/db"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const robotsPage = `<html><body>
<p><span id="Robot_Walker"></span>Robot Walker - power 3 - Move a minion to another base. FAQ</p>
<p><span id="Laser_Blast"></span>Laser Blast - Destroy a minion with power 3 or less.</p>
<p><span id="Broken_Bot"></span>Broken Bot - power 3x - Does nothing.</p>
<p>Flavor text without a span.</p>
</body></html>`

const dinosaursPage = `<html><body>
<p><span id="King_Rex"></span>King Rex - power 7 - No ability. FAQ</p>
</body></html>`

const corePage = `<html><body>
<div class="wikia-gallery">
<a href="/wiki/Robots">Robots</a>
<a href="/wiki/Dinosaurs">Dinosaurs</a>
<a href="/wiki/File:Robots.png">image</a>
</div>
</body></html>`

const basesPage = `<html><body><ul>
<li>Navigation</li>
<li>More navigation</li>
<li>The Mothership - breakpoint 20 - VPs: 4 2 1 - After this base scores, return a minion here to its owner's hand. FAQ</li>
<li>Evans City Cemetery - breakpoint 20 - VPs: 5 3 2 - After this base scores, each player may return a minion from his or her discard pile.</li>
<li>Broken Base - breakpoint X - VPs: 1 1 1 - Whatever.</li>
</ul></body></html>`

const categoryPage = `<html><body><ul>
<li><a href="/wiki/Core_Set">Core Set</a></li>
<li><a href="/wiki/Category:Something">cat</a></li>
</ul></body></html>`

const emptyFactionPage = `<html><body><p>Nothing here.</p></body></html>`

func wikiHandler() http.Handler {
	pages := map[string]string{
		"/wiki/Core_Set":      corePage,
		"/wiki/Robots":        robotsPage,
		"/wiki/Dinosaurs":     dinosaursPage,
		"/wiki/Bases":         basesPage,
		"/wiki/Category:Sets": categoryPage,
		"/wiki/Empty_Faction": emptyFactionPage,
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	})
}

func setupScraper(t *testing.T) (Scraper, carddata.Service) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/carddata/scraper",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	service := carddata.NewService(setup.DB)

	server := httptest.NewServer(wikiHandler())
	t.Cleanup(server.Close)

	cache, err := badger.Open(badger.DefaultOptions("").WithInMemory(true))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	client, err := smashwiki.NewClient(context.Background(), smashwiki.ClientOptions{
		BaseUrl:      server.URL,
		Cache:        cache,
		RequestDelay: time.Millisecond,
	})
	require.NoError(t, err)

	return NewScraper(client, service, Options{
		Window: smashwiki.BaseWindow{First: 2, Last: 4},
	}), service
}

func TestScrapeFaction(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeFaction(ctx, "Robots", "")
	t.Log(res)
	require.True(t, res.Success)
	require.Equal(t, "Successfully scraped faction Robots with 2 cards", res.Message)
	require.Equal(t, 3, res.ItemsProcessed)
	require.Len(t, res.Errors, 1)
	require.True(t, strings.HasPrefix(res.Errors[0], "Broken_Bot: "), res.Errors[0])

	cards, err := service.FactionCards(ctx, carddata.GenerateId("Robots"))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, cards.Minions, 1)
	require.Len(t, cards.Actions, 1)
	require.Equal(t, "Robot_Walker", cards.Minions[0].MinionName)
	require.Equal(t, int64(3), cards.Minions[0].MinionPower)
	require.Equal(t, "Move a minion to another base.", cards.Minions[0].MinionDesc)
	require.Equal(t, "Laser_Blast", cards.Actions[0].ActionName)
	require.Equal(t, "Destroy a minion with power 3 or less.", cards.Actions[0].ActionDesc)
}

func TestScrapeFactionNoCards(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeFaction(ctx, "Empty Faction", "")
	require.False(t, res.Success)
	require.Equal(t, "No cards found for faction Empty Faction", res.Message)
	require.Equal(t, 0, res.ItemsProcessed)
	require.Empty(t, res.Errors)

	// the faction row is still recorded even when its page had no cards
	faction, err := service.Faction(ctx, carddata.GenerateId("Empty Faction"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Empty Faction", faction.FactionName)
}

func TestScrapeFactionFetchError(t *testing.T) {
	s, _ := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeFaction(ctx, "Missing Faction", "")
	require.False(t, res.Success)
	require.Equal(t, "Could not fetch faction page for Missing Faction", res.Message)
	require.Equal(t, 0, res.ItemsProcessed)
}

func TestScrapeSet(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeSet(ctx, "Core Set")
	t.Log(res)
	require.True(t, res.Success)
	require.Equal(t, "Successfully scraped set Core Set with 2 factions", res.Message)
	require.Equal(t, 3, res.ItemsProcessed)
	require.Empty(t, res.Errors)

	factions, err := service.FactionsBySet(ctx, carddata.GenerateId("Core Set"))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, factions, 2)

	// shallow scrape stops at faction rows
	stats, err := service.CountStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, int64(0), stats.Cards)
}

func TestScrapeSetNoGallery(t *testing.T) {
	s, _ := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	// the empty faction page doubles as a set page without a gallery
	res := s.ScrapeSet(ctx, "Empty Faction")
	require.True(t, res.Success)
	require.Equal(t, "Successfully scraped set Empty Faction with 0 factions", res.Message)
	require.Equal(t, 1, res.ItemsProcessed)
	require.Empty(t, res.Errors)
}

func TestScrapeSetDeep(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeSetDeep(ctx, "Core Set")
	t.Log(res)
	require.True(t, res.Success)
	require.Equal(t, "Successfully scraped set Core Set with 2 factions", res.Message)
	require.Equal(t, 6, res.ItemsProcessed)
	require.Len(t, res.Errors, 1)

	stats, err := service.CountStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, carddata.Stats{
		Sets:     1,
		Factions: 2,
		Cards:    3,
		Minions:  2,
		Actions:  1,
	}, stats)
}

func TestScrapeBases(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeBases(ctx)
	t.Log(res)
	require.True(t, res.Success)
	require.Equal(t, "Successfully scraped 2 bases", res.Message)
	require.Equal(t, 2, res.ItemsProcessed)
	require.Len(t, res.Errors, 1)
	require.True(t, strings.HasPrefix(res.Errors[0], "index 4: "), res.Errors[0])

	bases, err := service.Bases(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, bases, 2)
	require.Equal(t, "Evans City Cemetery", bases[0].BaseName)
	require.Equal(t, int64(20), bases[0].BasePower)
	require.Equal(t, int64(5), bases[0].FirstPlace)
}

func TestScrapeAll(t *testing.T) {
	s, service := setupScraper(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	res := s.ScrapeAll(ctx)
	t.Log(res)
	require.True(t, res.Success)
	require.Equal(t, "Full scraping completed: 8 items processed", res.Message)
	require.Equal(t, 8, res.ItemsProcessed)
	require.Len(t, res.Errors, 2)

	stats, err := service.CountStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, carddata.Stats{
		Sets:     1,
		Factions: 2,
		Cards:    3,
		Minions:  2,
		Actions:  1,
		Bases:    2,
	}, stats)
}

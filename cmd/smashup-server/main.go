package main

import (
	"flag"
	"time"

	"smashup-backend/lib/configutil"
	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/lib/serviceutil"
	"smashup-backend/services/carddata"
	"smashup-backend/services/carddata/db"
	"smashup-backend/services/carddata/scraper"
	"smashup-backend/services/carddata/server"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.Database.File == "" && cfg.Database.Url == "" {
		cfg.Database.File = "data/smashup.db"
	}

	database, err := cfg.Database.OpenWithSchema(db.Schema)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	service := carddata.NewService(database)

	gallery, err := smashwiki.ParseGalleryStrategy(cfg.Scraper.GalleryStrategy)
	if err != nil {
		serviceutil.Fatal("parse gallery strategy", err)
	}
	var cache *badger.DB
	if cfg.Scraper.CachePath != "" {
		cache, err = badger.Open(badger.DefaultOptions(cfg.Scraper.CachePath))
		if err != nil {
			serviceutil.Fatal("open page cache", err)
		}
		defer cache.Close()
	}
	client, err := smashwiki.NewClient(ctx, smashwiki.ClientOptions{
		BaseUrl:      cfg.Scraper.BaseUrl,
		Cache:        cache,
		RequestDelay: time.Duration(cfg.Scraper.RequestDelayMs) * time.Millisecond,
	})
	if err != nil {
		serviceutil.Fatal("init wiki client", err)
	}

	srv := server.NewServer(service, scraper.NewScraper(client, service, scraper.Options{
		Gallery: gallery,
		Window:  cfg.Scraper.BaseWindow,
	}))

	serviceutil.StartHttpServer(ctx, cfg.Port, srv.SetupRouter())
}

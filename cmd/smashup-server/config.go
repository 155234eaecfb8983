package main

import (
	"smashup-backend/lib/scrapers/smashwiki"
	"smashup-backend/lib/sqliteutil"
)

type ScraperConfig struct {
	// wiki origin, defaults to the live fandom host
	BaseUrl string `json:"base_url"`
	// on-disk badger page cache, in-memory when empty
	CachePath       string               `json:"cache_path"`
	RequestDelayMs  int                  `json:"request_delay_ms"`
	GalleryStrategy string               `json:"gallery_strategy"`
	BaseWindow      smashwiki.BaseWindow `json:"base_window"`
}

type Config struct {
	Port     int               `json:"port"`
	Database sqliteutil.Config `json:"database"`
	Scraper  ScraperConfig     `json:"scraper"`
}

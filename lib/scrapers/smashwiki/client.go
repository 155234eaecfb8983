package smashwiki

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"smashup-backend/lib/restyutil"
	"smashup-backend/lib/telemetry"
	"smashup-backend/lib/textutil"
	"strings"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseUrl = "https://smashup.fandom.com"

const DefaultRequestDelay = time.Millisecond * 500

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	cache   pageCache
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl when empty
	BaseUrl string
	// page cache, an in-memory store is opened when nil
	Cache *badger.DB
	// pause enforced between requests that actually reach the
	// network, defaults to DefaultRequestDelay when zero. cache
	// hits are never delayed.
	RequestDelay time.Duration
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	if opts.RequestDelay == 0 {
		opts.RequestDelay = DefaultRequestDelay
	}
	cacheDb := opts.Cache
	if cacheDb == nil {
		cacheDb, err = badger.Open(badger.DefaultOptions("").WithInMemory(true))
		if err != nil {
			return nil, err
		}
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	client.SetRetryCount(3)
	client.SetRetryWaitTime(time.Second)
	client.SetRetryMaxWaitTime(time.Second * 8)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil || res == nil {
			return true
		}
		switch res.StatusCode() {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	})
	client.OnBeforeRequest(politenessDelay(opts.RequestDelay))

	telemetry.InstrumentResty(client, "scrapers/smashwiki/http")
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
		cache: pageCache{
			db:      cacheDb,
			baseUrl: baseUrl,
		},
	}
	return c, nil
}

// politenessDelay spaces out requests so the wiki is not hammered.
func politenessDelay(delay time.Duration) resty.RequestMiddleware {
	var mu sync.Mutex
	var last time.Time
	return func(client *resty.Client, req *resty.Request) error {
		mu.Lock()
		defer mu.Unlock()
		if wait := delay - time.Since(last); wait > 0 {
			time.Sleep(wait)
		}
		last = time.Now()
		return nil
	}
}

const PAGE_LIFETIME = int64((time.Hour / time.Second) * 24 * 7)

// GetPage fetches and parses a wiki page, serving from the cache when
// a fresh enough copy exists.
func (c *Client) GetPage(ctx context.Context, endpoint string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:GetPage")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "endpoint",
		Value: attribute.StringValue(endpoint),
	})

	cached, err := c.cache.get(ctx, endpoint)
	if err == nil {
		span.SetStatus(codes.Ok, "CACHE HIT")
		return goquery.NewDocumentFromReader(bytes.NewBuffer(cached.Contents))
	}
	if err != errPageNotFound {
		span.RecordError(err)
		span.AddEvent("CACHE ERROR", trace.WithAttributes(attribute.KeyValue{
			Key:   "log.severity",
			Value: attribute.StringValue("WARN"),
		}))
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("fetch %s: %s", endpoint, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	err = c.cache.set(ctx, endpoint, page{
		Contents:  res.Body(),
		ExpiresAt: time.Now().Unix() + PAGE_LIFETIME,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to cache request")
	}

	return doc, nil
}

// PageName converts a display name to the wiki's page title form.
func PageName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

func wikiPath(name string) string {
	return "/wiki/" + PageName(name)
}

// factionEndpoint resolves the page path for a faction. The Cthulhu
// factions share one combined page whose title differs from the
// faction names.
func factionEndpoint(faction string) string {
	if textutil.MatchName(faction, []string{"cthulhu"}) {
		return "/wiki/Minions_of_Cthulhu"
	}
	return wikiPath(faction)
}

func (c *Client) FactionPage(ctx context.Context, faction string) (*goquery.Document, error) {
	return c.GetPage(ctx, factionEndpoint(faction))
}

func (c *Client) SetPage(ctx context.Context, set string) (*goquery.Document, error) {
	return c.GetPage(ctx, wikiPath(set))
}

func (c *Client) BasesPage(ctx context.Context) (*goquery.Document, error) {
	return c.GetPage(ctx, "/wiki/Bases")
}

func (c *Client) SetsCategoryPage(ctx context.Context) (*goquery.Document, error) {
	return c.GetPage(ctx, "/wiki/Category:Sets")
}

// FactionUrl returns the absolute source url recorded for a faction.
func (c *Client) FactionUrl(faction string) string {
	return c.absUrl(factionEndpoint(faction))
}

// SetUrl returns the absolute source url recorded for a set.
func (c *Client) SetUrl(set string) string {
	return c.absUrl(wikiPath(set))
}

func (c *Client) absUrl(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return c.BaseUrl.String() + path
	}
	return c.BaseUrl.ResolveReference(ref).String()
}

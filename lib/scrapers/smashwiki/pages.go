package smashwiki

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CardBlock is one labeled paragraph from a faction page. The id of
// the paragraph's span doubles as the card's name, underscores and all.
type CardBlock struct {
	Label string
	Text  string
}

// CardBlocks returns the labeled paragraphs of a faction page in
// document order. Paragraphs whose first span carries no id are not
// card blocks and are skipped.
func CardBlocks(doc *goquery.Document) []CardBlock {
	var blocks []CardBlock
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		span := p.Find("span").First()
		if span.Length() == 0 {
			return
		}
		label := span.AttrOr("id", "")
		if label == "" {
			return
		}
		blocks = append(blocks, CardBlock{
			Label: label,
			Text:  p.Text(),
		})
	})
	return blocks
}

// GalleryStrategy selects how faction names are read off a set page.
// The wiki has used two different gallery markups over time and pages
// have not been migrated uniformly.
type GalleryStrategy string

const (
	// GalleryByClass walks the wiki links under the first
	// div.wikia-gallery element. Faction names come out in page
	// title form (underscores).
	GalleryByClass GalleryStrategy = "class"
	// GalleryByID walks the image alt texts under the element with
	// id gallery-0. Faction names come out in display form (spaces).
	GalleryByID GalleryStrategy = "id"
)

func ParseGalleryStrategy(s string) (GalleryStrategy, error) {
	switch s {
	case "", string(GalleryByClass):
		return GalleryByClass, nil
	case string(GalleryByID):
		return GalleryByID, nil
	}
	return "", fmt.Errorf("unknown gallery strategy: %q", s)
}

// ErrNoGallery reports a set page without a recognizable faction
// gallery. Callers treat it as "no factions", not as a failure.
var ErrNoGallery = fmt.Errorf("no faction gallery found")

// SetFactions extracts the faction names listed on a set page.
func SetFactions(doc *goquery.Document, strategy GalleryStrategy) ([]string, error) {
	switch strategy {
	case GalleryByID:
		return factionsFromGalleryID(doc)
	default:
		return factionsFromGalleryClass(doc)
	}
}

func factionsFromGalleryClass(doc *goquery.Document) ([]string, error) {
	gallery := doc.Find("div.wikia-gallery").First()
	if gallery.Length() == 0 {
		return nil, ErrNoGallery
	}

	var factions []string
	seen := make(map[string]bool)
	gallery.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !strings.Contains(href, "/wiki/") {
			return
		}
		lower := strings.ToLower(href)
		if strings.Contains(lower, "file:") ||
			strings.Contains(lower, "category:") ||
			strings.Contains(lower, "template:") {
			return
		}
		name := href[strings.LastIndex(href, "/wiki/")+len("/wiki/"):]
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		factions = append(factions, name)
	})
	return factions, nil
}

func factionsFromGalleryID(doc *goquery.Document) ([]string, error) {
	gallery := doc.Find("#gallery-0").First()
	if gallery.Length() == 0 {
		return nil, ErrNoGallery
	}

	var factions []string
	seen := make(map[string]bool)
	gallery.Find("img").Each(func(_ int, img *goquery.Selection) {
		alt := img.AttrOr("alt", "")
		if alt == "" || seen[alt] {
			return
		}
		seen[alt] = true
		factions = append(factions, alt)
	})
	return factions, nil
}

// BaseWindow bounds which li elements of the Bases listing count as
// base entries, both ends inclusive. The listing page renders
// navigation items with the same markup as base lines, so the bounds
// are configuration, not a parsing rule.
type BaseWindow struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

var DefaultBaseWindow = BaseWindow{First: 124, Last: 325}

func (w BaseWindow) contains(i int) bool {
	return i >= w.First && i <= w.Last
}

// BaseLine is one li element from the Bases listing, tagged with its
// document-order index for diagnostics.
type BaseLine struct {
	Index int
	Text  string
}

// BaseLines returns the text of every li element whose document-order
// index falls inside the window.
func BaseLines(doc *goquery.Document, window BaseWindow) []BaseLine {
	var lines []BaseLine
	doc.Find("li").Each(func(i int, li *goquery.Selection) {
		if !window.contains(i) {
			return
		}
		lines = append(lines, BaseLine{Index: i, Text: li.Text()})
	})
	return lines
}

// AvailableSets pulls set page names out of the Category:Sets listing.
// Maintenance pages that share the category's list markup are
// filtered out.
func AvailableSets(doc *goquery.Document) []string {
	var sets []string
	seen := make(map[string]bool)
	doc.Find("ul a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !strings.HasPrefix(href, "/wiki/") {
			return
		}
		if strings.HasPrefix(href, "/wiki/Category:") ||
			strings.HasPrefix(href, "/wiki/Special:") ||
			strings.HasPrefix(href, "/wiki/File:") {
			return
		}
		name := href[strings.LastIndex(href, "/wiki/")+len("/wiki/"):]
		if name == "" ||
			strings.HasPrefix(name, "User:") ||
			strings.HasSuffix(name, "_Wiki") ||
			name == "Main_Page" ||
			seen[name] {
			return
		}
		seen[name] = true
		sets = append(sets, name)
	})
	return sets
}

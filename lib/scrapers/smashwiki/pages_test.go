package smashwiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

const factionPageHtml = `<html>
<body>
	<p><span id="Robot_Walker">Robot Walker</span> - power 3 - Move a minion to another base.</p>
	<p><span id="Laser_Blast">Laser Blast</span> - Destroy a minion with power 3 or less.</p>
	<p>Robots are one of the factions in the Core Set.</p>
	<p><span class="anchor">Unlabeled</span> - power 2 - Never extracted.</p>
	<p><span id="Metal_Detector">Metal Detector</span> - power 2 - Search the discard pile for an action and play it.</p>
</body>
</html>`

func TestCardBlocks(t *testing.T) {
	doc := parseDoc(t, factionPageHtml)

	got := CardBlocks(doc)
	want := []CardBlock{
		{Label: "Robot_Walker", Text: "Robot Walker - power 3 - Move a minion to another base."},
		{Label: "Laser_Blast", Text: "Laser Blast - Destroy a minion with power 3 or less."},
		{Label: "Metal_Detector", Text: "Metal Detector - power 2 - Search the discard pile for an action and play it."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestCardBlocksEmptyPage(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>No cards here.</p></body></html>`)
	require.Empty(t, CardBlocks(doc))
}

const setPageClassHtml = `<html>
<body>
	<div class="wikia-gallery">
		<a href="/wiki/Robots"><img src="robot.jpg"/></a>
		<a href="/wiki/File:Robots.jpg"><img src="robot.jpg"/></a>
		<a href="/wiki/Category:Factions">factions</a>
		<a href="/wiki/Template:FactionBox">template</a>
		<a href="https://smashup.fandom.com/wiki/Star_Roamers"><img src="roamer.jpg"/></a>
		<a href="/elsewhere/entirely">junk</a>
		<a href="/wiki/Robots">duplicate</a>
	</div>
</body>
</html>`

const setPageIdHtml = `<html>
<body>
	<div id="gallery-0">
		<img src="robot.jpg" alt="Robots" />
		<img src="dinosaur.jpg" alt="Dinosaurs" />
		<img src="spacer.gif" />
		<img src="wizard.jpg" alt="Wizards" />
		<img src="robot-again.jpg" alt="Robots" />
	</div>
</body>
</html>`

func TestSetFactions(t *testing.T) {
	{
		doc := parseDoc(t, setPageClassHtml)
		got, err := SetFactions(doc, GalleryByClass)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"Robots", "Star_Roamers"}, got); diff != "" {
			t.Fatal(diff)
		}
	}
	{
		doc := parseDoc(t, setPageIdHtml)
		got, err := SetFactions(doc, GalleryByID)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"Robots", "Dinosaurs", "Wizards"}, got); diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestSetFactionsNoGallery(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>This set page has no gallery at all.</p></body></html>`)

	_, err := SetFactions(doc, GalleryByClass)
	require.ErrorIs(t, err, ErrNoGallery)

	_, err = SetFactions(doc, GalleryByID)
	require.ErrorIs(t, err, ErrNoGallery)
}

func TestParseGalleryStrategy(t *testing.T) {
	strategy, err := ParseGalleryStrategy("")
	require.NoError(t, err)
	require.Equal(t, GalleryByClass, strategy)

	strategy, err = ParseGalleryStrategy("class")
	require.NoError(t, err)
	require.Equal(t, GalleryByClass, strategy)

	strategy, err = ParseGalleryStrategy("id")
	require.NoError(t, err)
	require.Equal(t, GalleryByID, strategy)

	_, err = ParseGalleryStrategy("xpath")
	require.Error(t, err)
}

const setsCategoryHtml = `<html>
<body>
	<ul>
		<li><a href="/wiki/Core_Set">Core Set</a></li>
		<li><a href="/wiki/Category:Expansions">Expansions</a></li>
		<li><a href="/wiki/Special:RecentChanges">Recent changes</a></li>
		<li><a href="/wiki/File:Box.jpg">Box art</a></li>
		<li><a href="/wiki/User:Cardcollector">A user</a></li>
		<li><a href="/wiki/Smash_Up_Wiki">The wiki itself</a></li>
		<li><a href="/wiki/Main_Page">Main page</a></li>
		<li><a href="https://elsewhere.example/wiki/Not_Local">External</a></li>
		<li><a href="/wiki/Awesome_Level_9000">Awesome Level 9000</a></li>
		<li><a href="/wiki/Core_Set">Core Set again</a></li>
	</ul>
	<ul>
		<li><a href="/wiki/Monster_Smash">Monster Smash</a></li>
	</ul>
</body>
</html>`

func TestAvailableSets(t *testing.T) {
	doc := parseDoc(t, setsCategoryHtml)

	got := AvailableSets(doc)
	want := []string{"Core_Set", "Awesome_Level_9000", "Monster_Smash"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

const basesPageHtml = `<html>
<body>
	<ul>
		<li>Navigation</li>
		<li>Another nav item</li>
		<li>The School - breakpoint 15 - VPs: 4 2 1 - Students get +1 power.</li>
		<li>The Mall - breakpoint 20 - VPs: 6 3 1 - After each player's turn, they may draw a card.</li>
		<li>Cave of Shinies - breakpoint 12 - VPs: 3 2 1 - Minions here cannot use their abilities.</li>
		<li>Trailing nav item</li>
	</ul>
</body>
</html>`

func TestBaseLines(t *testing.T) {
	doc := parseDoc(t, basesPageHtml)

	got := BaseLines(doc, BaseWindow{First: 2, Last: 4})
	want := []BaseLine{
		{Index: 2, Text: "The School - breakpoint 15 - VPs: 4 2 1 - Students get +1 power."},
		{Index: 3, Text: "The Mall - breakpoint 20 - VPs: 6 3 1 - After each player's turn, they may draw a card."},
		{Index: 4, Text: "Cave of Shinies - breakpoint 12 - VPs: 3 2 1 - Minions here cannot use their abilities."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestBaseLinesOutsideWindow(t *testing.T) {
	doc := parseDoc(t, basesPageHtml)
	require.Empty(t, BaseLines(doc, BaseWindow{First: 124, Last: 325}))
}

package carddata

import (
	"context"
	"testing"
	"time"

	"smashup-backend/lib/cardtext"
	"smashup-backend/lib/testutil"
	"smashup-backend/services/carddata/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestGenerateId(t *testing.T) {
	require.Equal(t, "000fecfcd9ed8119c3841ca87d49d291", GenerateId("Robots"))
	require.Equal(t, "0f15d2dc442fc0c38d6a9da5a370d330", GenerateId("Zapbot"))
	require.Equal(t, GenerateId("Zapbot"), GenerateId("Zapbot"))
}

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/carddata",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		sets, err := service.Sets(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, sets, 0)

		stats, err := service.CountStats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, Stats{}, stats)
	}

	var setId, factionId string
	{
		var err error
		setId, err = service.InsertSet(ctx, "Core Set", "https://smashup.fandom.com/wiki/Core_Set")
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, GenerateId("Core Set"), setId)

		factionId, err = service.InsertFaction(ctx, "Robots", "https://smashup.fandom.com/wiki/Robots", setId)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, GenerateId("Robots"), factionId)

		minion, err := cardtext.NewMinion("Zapbot", 2, "You may play an extra minion of power 2 or less.")
		if err != nil {
			t.Fatal(err)
		}
		err = service.InsertMinion(ctx, factionId, minion)
		if err != nil {
			t.Fatal(err)
		}
		// re-scraping the same page must not duplicate rows
		err = service.InsertMinion(ctx, factionId, minion)
		if err != nil {
			t.Fatal(err)
		}

		action, err := cardtext.NewAction("Tech Center", "Draw two cards.")
		if err != nil {
			t.Fatal(err)
		}
		err = service.InsertAction(ctx, factionId, action)
		if err != nil {
			t.Fatal(err)
		}

		base, err := cardtext.NewBase("The Mothership", 20, [3]int{4, 2, 1}, "After this base scores, return a minion here to its owner's hand.")
		if err != nil {
			t.Fatal(err)
		}
		err = service.InsertBase(ctx, base)
		if err != nil {
			t.Fatal(err)
		}
	}

	{
		sets, err := service.Sets(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, sets, 1)
		require.Equal(t, "Core Set", sets[0].SetName)

		factions, err := service.FactionsBySet(ctx, setId)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, factions, 1)
		require.Equal(t, "Robots", factions[0].FactionName)

		faction, err := service.Faction(ctx, factionId)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, setId, faction.SetID)

		cards, err := service.FactionCards(ctx, factionId)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, cards.Minions, 1)
		require.Len(t, cards.Actions, 1)
		require.Equal(t, "Zapbot", cards.Minions[0].MinionName)
		require.Equal(t, int64(2), cards.Minions[0].MinionPower)
		require.Equal(t, "Tech Center", cards.Actions[0].ActionName)

		bases, err := service.Bases(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, bases, 1)
		require.Equal(t, int64(20), bases[0].BasePower)
		require.Equal(t, int64(4), bases[0].FirstPlace)
	}

	{
		stats, err := service.CountStats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		t.Log(stats)
		require.Equal(t, Stats{
			Sets:     1,
			Factions: 1,
			Cards:    2,
			Minions:  1,
			Actions:  1,
			Bases:    1,
		}, stats)
	}

	{
		export, err := service.ExportAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, export.Sets, 1)
		require.Len(t, export.Factions, 1)
		require.Len(t, export.Minions, 1)
		require.Len(t, export.Actions, 1)
		require.Len(t, export.Bases, 1)
	}

	{
		err := service.ClearAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		stats, err := service.CountStats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, Stats{}, stats)
	}
}

func TestSearchCards(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/carddata",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	factionId, err := service.InsertFaction(ctx, "Robots", "", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Zapbot", "Warbot", "Hoverbot"} {
		minion, err := cardtext.NewMinion(name, 1, "desc")
		if err != nil {
			t.Fatal(err)
		}
		err = service.InsertMinion(ctx, factionId, minion)
		if err != nil {
			t.Fatal(err)
		}
	}
	action, err := cardtext.NewAction("Terraforming", "Search your deck for a base.")
	if err != nil {
		t.Fatal(err)
	}
	err = service.InsertAction(ctx, factionId, action)
	if err != nil {
		t.Fatal(err)
	}

	{
		matches, err := service.SearchCards(ctx, "zapbot", 0)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, matches, 4)
		require.Equal(t, "Zapbot", matches[0].Name)
		require.Equal(t, "minion", matches[0].Kind)
		require.NotNil(t, matches[0].Power)
		require.Equal(t, float64(1), matches[0].Similarity)
		// every later match is at most as similar as the one before it
		for i := 1; i < len(matches); i++ {
			require.LessOrEqual(t, matches[i].Similarity, matches[i-1].Similarity)
		}
	}
	{
		matches, err := service.SearchCards(ctx, "terraforming", 2)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, matches, 2)
		require.Equal(t, "Terraforming", matches[0].Name)
		require.Equal(t, "action", matches[0].Kind)
		require.Nil(t, matches[0].Power)
	}
}

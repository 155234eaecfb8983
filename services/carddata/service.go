package carddata

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"smashup-backend/lib/cardtext"
	"smashup-backend/lib/textutil"
	"smashup-backend/services/carddata/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/carddata")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// GenerateId derives the stable identifier recorded for a scraped
// name. Identity is name-based so re-scraping a wiki page never
// duplicates rows.
func GenerateId(name string) string {
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:])
}

func (s Service) InsertSet(ctx context.Context, name, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "InsertSet")
	defer span.End()
	span.SetAttributes(attribute.String("set", name))

	setId := GenerateId(name)
	err := s.qry.InsertSet(ctx, db.InsertSetParams{
		SetID:     setId,
		SetName:   name,
		SetUrl:    url,
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return setId, nil
}

func (s Service) InsertFaction(ctx context.Context, name, url, setId string) (string, error) {
	ctx, span := tracer.Start(ctx, "InsertFaction")
	defer span.End()
	span.SetAttributes(attribute.String("faction", name))

	factionId := GenerateId(name)
	err := s.qry.InsertFaction(ctx, db.InsertFactionParams{
		FactionID:   factionId,
		FactionName: name,
		FactionUrl:  url,
		SetID:       setId,
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return factionId, nil
}

// InsertMinion stores a minion and its faction link in one
// transaction so a crash can not leave a card without a faction.
func (s Service) InsertMinion(ctx context.Context, factionId string, minion cardtext.Minion) error {
	ctx, span := tracer.Start(ctx, "InsertMinion")
	defer span.End()
	span.SetAttributes(attribute.String("minion", minion.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	cardId := GenerateId(minion.Name)
	err = txqry.InsertMinion(ctx, db.InsertMinionParams{
		MinionID:    cardId,
		MinionName:  minion.Name,
		MinionDesc:  minion.Description,
		MinionPower: int64(minion.Power),
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.InsertCardLink(ctx, db.InsertCardLinkParams{
		CardID:    cardId,
		FactionID: factionId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s Service) InsertAction(ctx context.Context, factionId string, action cardtext.Action) error {
	ctx, span := tracer.Start(ctx, "InsertAction")
	defer span.End()
	span.SetAttributes(attribute.String("action", action.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	cardId := GenerateId(action.Name)
	err = txqry.InsertAction(ctx, db.InsertActionParams{
		ActionID:   cardId,
		ActionName: action.Name,
		ActionDesc: action.Description,
		CreatedAt:  time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.InsertCardLink(ctx, db.InsertCardLinkParams{
		CardID:    cardId,
		FactionID: factionId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s Service) InsertBase(ctx context.Context, base cardtext.Base) error {
	ctx, span := tracer.Start(ctx, "InsertBase")
	defer span.End()
	span.SetAttributes(attribute.String("base", base.Name))

	err := s.qry.InsertBase(ctx, db.InsertBaseParams{
		BaseID:      GenerateId(base.Name),
		BaseName:    base.Name,
		BasePower:   int64(base.Breakpoint),
		BaseDesc:    base.Description,
		FirstPlace:  int64(base.VictoryPoints[0]),
		SecondPlace: int64(base.VictoryPoints[1]),
		ThirdPlace:  int64(base.VictoryPoints[2]),
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s Service) Sets(ctx context.Context) ([]db.Set, error) {
	ctx, span := tracer.Start(ctx, "Sets")
	defer span.End()

	sets, err := s.qry.GetSets(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return sets, nil
}

func (s Service) FactionsBySet(ctx context.Context, setId string) ([]db.Faction, error) {
	ctx, span := tracer.Start(ctx, "FactionsBySet")
	defer span.End()
	span.SetAttributes(attribute.String("set_id", setId))

	factions, err := s.qry.GetFactionsBySet(ctx, setId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return factions, nil
}

func (s Service) Faction(ctx context.Context, factionId string) (db.Faction, error) {
	ctx, span := tracer.Start(ctx, "Faction")
	defer span.End()
	span.SetAttributes(attribute.String("faction_id", factionId))

	faction, err := s.qry.GetFaction(ctx, factionId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Faction{}, err
	}
	return faction, nil
}

type FactionCards struct {
	Minions []db.Minion `json:"minions"`
	Actions []db.Action `json:"actions"`
}

func (s Service) FactionCards(ctx context.Context, factionId string) (FactionCards, error) {
	ctx, span := tracer.Start(ctx, "FactionCards")
	defer span.End()
	span.SetAttributes(attribute.String("faction_id", factionId))

	minions, err := s.qry.GetMinionsByFaction(ctx, factionId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return FactionCards{}, err
	}
	actions, err := s.qry.GetActionsByFaction(ctx, factionId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return FactionCards{}, err
	}
	return FactionCards{Minions: minions, Actions: actions}, nil
}

func (s Service) Bases(ctx context.Context) ([]db.Base, error) {
	ctx, span := tracer.Start(ctx, "Bases")
	defer span.End()

	bases, err := s.qry.GetBases(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return bases, nil
}

type CardMatch struct {
	Kind        string  `json:"kind"`
	CardID      string  `json:"card_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Power       *int64  `json:"power,omitempty"`
	Similarity  float64 `json:"similarity"`
}

// SearchCards ranks every stored card against the query by name
// similarity and returns the closest matches.
func (s Service) SearchCards(ctx context.Context, query string, limit int) ([]CardMatch, error) {
	ctx, span := tracer.Start(ctx, "SearchCards")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	if limit <= 0 {
		limit = 10
	}

	minions, err := s.qry.GetMinions(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	actions, err := s.qry.GetActions(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	needle := textutil.NormalizeName(query)
	matches := make([]CardMatch, 0, len(minions)+len(actions))
	for _, m := range minions {
		power := m.MinionPower
		matches = append(matches, CardMatch{
			Kind:        "minion",
			CardID:      m.MinionID,
			Name:        m.MinionName,
			Description: m.MinionDesc,
			Power:       &power,
			Similarity:  matchr.JaroWinkler(needle, textutil.NormalizeName(m.MinionName), false),
		})
	}
	for _, a := range actions {
		matches = append(matches, CardMatch{
			Kind:        "action",
			CardID:      a.ActionID,
			Name:        a.ActionName,
			Description: a.ActionDesc,
			Similarity:  matchr.JaroWinkler(needle, textutil.NormalizeName(a.ActionName), false),
		})
	}

	slices.SortFunc(matches, func(a, b CardMatch) int {
		// the 1 and -1 are flipped to make it sort descending (large values near the front)
		if a.Similarity < b.Similarity {
			return 1
		}
		if a.Similarity > b.Similarity {
			return -1
		}
		return strings.Compare(a.Name, b.Name)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

type Stats struct {
	Sets     int64 `json:"sets"`
	Factions int64 `json:"factions"`
	Cards    int64 `json:"cards"`
	Minions  int64 `json:"minions"`
	Actions  int64 `json:"actions"`
	Bases    int64 `json:"bases"`
}

func (s Service) CountStats(ctx context.Context) (Stats, error) {
	ctx, span := tracer.Start(ctx, "CountStats")
	defer span.End()

	var stats Stats
	var err error
	for _, count := range []struct {
		dst  *int64
		from func(context.Context) (int64, error)
	}{
		{&stats.Sets, s.qry.CountSets},
		{&stats.Factions, s.qry.CountFactions},
		{&stats.Cards, s.qry.CountCards},
		{&stats.Minions, s.qry.CountMinions},
		{&stats.Actions, s.qry.CountActions},
		{&stats.Bases, s.qry.CountBases},
	} {
		*count.dst, err = count.from(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Stats{}, err
		}
	}
	return stats, nil
}

type Export struct {
	Sets     []db.Set     `json:"sets"`
	Factions []db.Faction `json:"factions"`
	Minions  []db.Minion  `json:"minions"`
	Actions  []db.Action  `json:"actions"`
	Bases    []db.Base    `json:"bases"`
}

func (s Service) ExportAll(ctx context.Context) (Export, error) {
	ctx, span := tracer.Start(ctx, "ExportAll")
	defer span.End()

	var out Export
	var err error
	out.Sets, err = s.qry.GetSets(ctx)
	if err == nil {
		out.Factions, err = s.qry.GetFactions(ctx)
	}
	if err == nil {
		out.Minions, err = s.qry.GetMinions(ctx)
	}
	if err == nil {
		out.Actions, err = s.qry.GetActions(ctx)
	}
	if err == nil {
		out.Bases, err = s.qry.GetBases(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Export{}, err
	}
	return out, nil
}

// ClearAll deletes every stored row, children before parents to keep
// foreign keys satisfied.
func (s Service) ClearAll(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ClearAll")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	for _, del := range []func(context.Context) error{
		txqry.DeleteCards,
		txqry.DeleteMinions,
		txqry.DeleteActions,
		txqry.DeleteBases,
		txqry.DeleteFactions,
		txqry.DeleteSets,
	} {
		err = del(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

package location

import (
	"aa-wizard-industry/esi"
	"aa-wizard-industry/universe"
	"context"
	"errors"
	"fmt"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnresolvable = errors.New("location unresolvable")

type Request struct {
	LocationId int64
	Flag       string
	// Token authorizes the structure lookup.
	Token  string
	ItemId int64
}

// Resolve names the location of an item. It never stores what it finds; ok is false with a nil error when the
// flag says the item has no place of its own, and an error wrapping ErrUnresolvable means the id should be
// remembered as failed for the rest of the sync.
func Resolve(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(r Request) (Model, bool, error) {
	return func(r Request) (Model, bool, error) {
		if !Resolvable(r.Flag) {
			return Model{}, false, nil
		}

		span, ctx := opentracing.StartSpanFromContext(ctx, "location.resolve")
		defer span.Finish()
		span.SetTag("location_id", r.LocationId)

		// An office folder names the office item, never its container, so it wins over a cached container row.
		if r.Flag == FlagOfficeFolder {
			return resolveOffice(l, ctx, db, c)(r)
		}

		if r.LocationId < StructureMin {
			m, err := GetById(l, db)(r.LocationId)
			if err == nil {
				return m, true, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return Model{}, false, err
			}
		}

		switch {
		case r.LocationId == AssetSafetyId:
			return NewModel(AssetSafetyId, AssetSafetyName, 0, 0), true, nil
		case IsSystem(r.LocationId):
			s, err := universe.GetOrCreateSystem(l, ctx, db, c)(uint32(r.LocationId))
			if err != nil {
				return Model{}, false, unresolvable(r.LocationId, err)
			}
			return NewModel(r.LocationId, s.Name(), s.Id(), 0), true, nil
		case IsStation(r.LocationId):
			return resolveStation(l, ctx, db, c)(r.LocationId)
		}
		return resolveStructure(l, ctx, db, c)(r)
	}
}

func unresolvable(id int64, err error) error {
	return fmt.Errorf("%w: %d: %v", ErrUnresolvable, id, err)
}

func resolveStation(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(id int64) (Model, bool, error) {
	return func(id int64) (Model, bool, error) {
		st, err := c.Station(ctx, id)
		if err != nil {
			l.WithError(err).Warnf("Unable to retrieve station [%d].", id)
			return Model{}, false, unresolvable(id, err)
		}
		s, err := universe.GetOrCreateSystem(l, ctx, db, c)(st.SystemId)
		if err != nil {
			return Model{}, false, unresolvable(id, err)
		}
		return NewModel(id, st.Name, s.Id(), 0), true, nil
	}
}

func resolveStructure(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(r Request) (Model, bool, error) {
	return func(r Request) (Model, bool, error) {
		st, err := c.Structure(ctx, r.Token, r.LocationId)
		if err != nil {
			if errors.Is(err, esi.ErrForbidden) {
				l.Debugf("Access to structure [%d] denied.", r.LocationId)
			} else {
				l.WithError(err).Warnf("Unable to retrieve structure [%d].", r.LocationId)
			}
			return Model{}, false, unresolvable(r.LocationId, err)
		}
		s, err := universe.GetOrCreateSystem(l, ctx, db, c)(st.SolarSystemId)
		if err != nil {
			return Model{}, false, unresolvable(r.LocationId, err)
		}
		return NewModel(r.LocationId, st.Name, s.Id(), 0), true, nil
	}
}

// resolveOffice names the office itself. The office sits in the item's location, resolved as a hangar.
func resolveOffice(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(r Request) (Model, bool, error) {
	return func(r Request) (Model, bool, error) {
		if p, err := GetById(l, db)(r.LocationId); err == nil {
			return NewModel(r.ItemId, OfficeName(r.ItemId), p.SystemId(), p.Id()).withParent(p), true, nil
		}
		p, ok, err := Resolve(l, ctx, db, c)(Request{LocationId: r.LocationId, Flag: FlagHangar, Token: r.Token, ItemId: r.ItemId})
		if err != nil {
			return Model{}, false, err
		}
		if !ok {
			return Model{}, false, nil
		}
		return NewModel(r.ItemId, OfficeName(r.ItemId), p.SystemId(), p.Id()).withParent(p), true, nil
	}
}

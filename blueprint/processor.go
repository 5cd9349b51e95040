package blueprint

import (
	"aa-wizard-industry/credential"
	"aa-wizard-industry/database"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/universe"
	"context"
	"errors"
	"fmt"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var requirement = owner.Requirement{
	CharacterScopes:   []string{credential.ScopeCharacterBlueprints},
	CorporationScopes: []string{credential.ScopeCorporationBlueprint},
	CorporationRole:   credential.RoleDirector,
}

type Result struct {
	Skipped    bool
	Blueprints int
}

func GetForScope(_ logrus.FieldLogger, db *gorm.DB) func(scope owner.Scope) ([]Model, error) {
	return func(scope owner.Scope) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForScope(scope), makeBlueprint)()
	}
}

// OwnedOriginals returns the blueprint type ids of which any of the scopes holds an original.
func OwnedOriginals(_ logrus.FieldLogger, db *gorm.DB) func(scopes ...owner.Scope) (map[uint32]bool, error) {
	return func(scopes ...owner.Scope) (map[uint32]bool, error) {
		ids, err := getOriginalTypeIds(db, scopes)
		if err != nil {
			return nil, err
		}
		result := make(map[uint32]bool, len(ids))
		for _, id := range ids {
			result[id] = true
		}
		return result, nil
	}
}

// SyncBlueprints replaces the stored blueprints of the owner with the current ESI snapshot.
func SyncBlueprints(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client, s credential.Settings) func(o owner.Model) (Result, error) {
	return func(o owner.Model) (Result, error) {
		span, ctx := opentracing.StartSpanFromContext(ctx, "blueprint.sync")
		defer span.Finish()
		fl := l.WithField("owner_id", o.Id())

		cr, err := owner.Credential(fl, ctx, db, s, c)(o, requirement)
		if errors.Is(err, credential.ErrNotFound) {
			fl.Debugf("No credential qualifies to sync blueprints of [%s].", o.Scope())
			return Result{Skipped: true}, nil
		}
		if err != nil {
			return Result{}, err
		}

		var rms []esi.BlueprintRestModel
		if o.Corporation() {
			rms, err = c.CorporationBlueprints(ctx, cr.AccessToken(), o.CorporationId())
		} else {
			rms, err = c.CharacterBlueprints(ctx, cr.AccessToken(), o.CharacterId())
		}
		if err != nil {
			return Result{}, fmt.Errorf("fetching blueprints of %s: %w", o.Scope(), err)
		}

		known, err := universe.GetTypeIds(db)
		if err != nil {
			return Result{}, err
		}
		kept := make([]esi.BlueprintRestModel, 0, len(rms))
		for _, rm := range rms {
			if _, ok := known[rm.TypeId]; !ok {
				_, err = universe.GetOrCreateType(fl, ctx, db, c)(rm.TypeId)
				known[rm.TypeId] = err == nil
			}
			if !known[rm.TypeId] {
				fl.Warnf("Skipping blueprint [%d] of unknown type [%d].", rm.ItemId, rm.TypeId)
				continue
			}
			kept = append(kept, rm)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			return replace(tx, o.Scope(), kept)
		})
		if err != nil {
			return Result{}, err
		}
		fl.Infof("Synced [%d] blueprints of [%s].", len(kept), o.Scope())
		return Result{Blueprints: len(kept)}, nil
	}
}

package job

import (
	"aa-wizard-industry/credential"
	"aa-wizard-industry/database"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/location"
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
	CharacterScopes:   []string{credential.ScopeCharacterJobs},
	CorporationScopes: []string{credential.ScopeCorporationJobs},
	CorporationRole:   credential.RoleFactoryManager,
}

type Result struct {
	Skipped bool
	Created int
	Updated int
	// Ignored counts jobs dropped because a referenced type is unknown.
	Ignored int
}

func GetForScope(_ logrus.FieldLogger, db *gorm.DB) func(scope owner.Scope) ([]Model, error) {
	return func(scope owner.Scope) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForScope(scope), makeJob)()
	}
}

// knownRefs attaches only locations that are already stored.
func knownRefs(idx location.Index, rm esi.JobRestModel) Refs {
	known := func(id int64) int64 {
		if _, ok := idx.Get(id); ok {
			return id
		}
		return 0
	}
	return Refs{
		BlueprintLocation: known(rm.BlueprintLocationId),
		Facility:          known(rm.FacilityId),
		Location:          known(rm.Location()),
		OutputLocation:    known(rm.OutputLocationId),
	}
}

// SyncJobs upserts the industry jobs of the owner by job id. Jobs never trigger location resolution.
func SyncJobs(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client, s credential.Settings) func(o owner.Model) (Result, error) {
	return func(o owner.Model) (Result, error) {
		span, ctx := opentracing.StartSpanFromContext(ctx, "job.sync")
		defer span.Finish()
		fl := l.WithField("owner_id", o.Id())

		cr, err := owner.Credential(fl, ctx, db, s, c)(o, requirement)
		if errors.Is(err, credential.ErrNotFound) {
			fl.Debugf("No credential qualifies to sync jobs of [%s].", o.Scope())
			return Result{Skipped: true}, nil
		}
		if err != nil {
			return Result{}, err
		}

		var rms []esi.JobRestModel
		if o.Corporation() {
			rms, err = c.CorporationJobs(ctx, cr.AccessToken(), o.CorporationId())
		} else {
			rms, err = c.CharacterJobs(ctx, cr.AccessToken(), o.CharacterId())
		}
		if err != nil {
			return Result{}, fmt.Errorf("fetching jobs of %s: %w", o.Scope(), err)
		}

		existing, err := GetForScope(fl, db)(o.Scope())
		if err != nil {
			return Result{}, err
		}
		byJobId := make(map[uint32]Model, len(existing))
		for _, m := range existing {
			byJobId[m.JobId()] = m
		}
		idx, err := location.GetIndex(fl, db)
		if err != nil {
			return Result{}, err
		}

		r := Result{}
		for _, rm := range rms {
			refs := knownRefs(idx, rm)
			if m, ok := byJobId[rm.JobId]; ok {
				if err = update(db, m.Id(), rm, m.Refs().merge(refs)); err != nil {
					return r, err
				}
				r.Updated++
				continue
			}

			if !ensureTypes(fl, ctx, db, c)(rm) {
				r.Ignored++
				continue
			}
			m, err := create(db, o.Scope(), rm, refs)
			if err != nil {
				return r, err
			}
			byJobId[m.JobId()] = m
			r.Created++
		}
		fl.Infof("Synced jobs of [%s]: [%d] created, [%d] updated, [%d] ignored.", o.Scope(), r.Created, r.Updated, r.Ignored)
		return r, nil
	}
}

func ensureTypes(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(rm esi.JobRestModel) bool {
	return func(rm esi.JobRestModel) bool {
		for _, id := range []uint32{rm.BlueprintTypeId, rm.ProductTypeId} {
			if id == 0 {
				continue
			}
			if _, err := universe.GetOrCreateType(l, ctx, db, c)(id); err != nil {
				l.WithError(err).Warnf("Skipping job [%d] referencing unknown type [%d].", rm.JobId, id)
				return false
			}
		}
		return true
	}
}

package synchronizer

import (
	"aa-wizard-industry/asset"
	"aa-wizard-industry/blueprint"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/job"
	"aa-wizard-industry/kafka/producer"
	"aa-wizard-industry/owner"
	"context"
	"fmt"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"sync"
)

type Target string

const (
	TargetAssets     Target = "ASSETS"
	TargetBlueprints Target = "BLUEPRINTS"
	TargetJobs       Target = "JOBS"
)

var AllTargets = []Target{TargetAssets, TargetBlueprints, TargetJobs}

func (t Target) Valid() bool {
	for _, v := range AllTargets {
		if v == t {
			return true
		}
	}
	return false
}

// Report is the outcome of one owner sync.
type Report struct {
	SyncId     string
	Assets     asset.Result
	Names      int
	Blueprints blueprint.Result
	Jobs       job.Result
}

type Dependencies struct {
	Db       *gorm.DB
	Esi      *esi.Client
	Settings credential.Settings
	Producer producer.Provider
}

func emit(l logrus.FieldLogger, p producer.Provider, mp model.Provider[[]kafka.Message]) {
	if p == nil {
		return
	}
	if err := p(EnvEventTopicSyncStatus)(mp); err != nil {
		l.WithError(err).Warnf("Unable to emit sync status event.")
	}
}

// SyncOwner runs the requested targets for one owner in order: assets (then their names), blueprints, jobs. Syncs of
// the same owner never overlap. A failing target does not stop the following ones; the failures are returned
// together.
func SyncOwner(l logrus.FieldLogger, ctx context.Context, d Dependencies) func(ownerId uint32, targets ...Target) (Report, error) {
	return func(ownerId uint32, targets ...Target) (Report, error) {
		if len(targets) == 0 {
			targets = AllTargets
		}
		r := Report{SyncId: uuid.New().String()}
		fl := l.WithFields(logrus.Fields{"owner_id": ownerId, "sync_id": r.SyncId})

		span, ctx := opentracing.StartSpanFromContext(ctx, "synchronizer.owner")
		defer span.Finish()
		span.SetTag("sync_id", r.SyncId)

		o, err := owner.GetById(fl, d.Db)(ownerId)
		if err != nil {
			return r, fmt.Errorf("loading owner %d: %w", ownerId, err)
		}

		lock := GetLockRegistry().GetById(ownerId)
		lock.Lock()
		defer lock.Unlock()

		var errs *multierror.Error
		for _, t := range targets {
			if ctx.Err() != nil {
				errs = multierror.Append(errs, ctx.Err())
				break
			}
			emit(fl, d.Producer, startedEventProvider(r.SyncId, ownerId, t))
			count, skipped, err := runTarget(fl, ctx, d, o, t, &r)
			switch {
			case err != nil:
				fl.WithError(err).Errorf("Sync of [%s] for [%s] failed.", t, o.Scope())
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", t, err))
				emit(fl, d.Producer, failedEventProvider(r.SyncId, ownerId, t, err))
			case skipped:
				emit(fl, d.Producer, skippedEventProvider(r.SyncId, ownerId, t))
			default:
				emit(fl, d.Producer, completedEventProvider(r.SyncId, ownerId, t, count))
			}
		}
		return r, errs.ErrorOrNil()
	}
}

func runTarget(l logrus.FieldLogger, ctx context.Context, d Dependencies, o owner.Model, t Target, r *Report) (int, bool, error) {
	switch t {
	case TargetAssets:
		res, err := asset.SyncAssets(l, ctx, d.Db, d.Esi, d.Settings)(o)
		if err != nil {
			return 0, false, err
		}
		r.Assets = res
		if res.Skipped || res.NotModified {
			return 0, true, nil
		}
		r.Names, err = asset.UpdateAssetNames(l, ctx, d.Db, d.Esi, d.Settings)(o)
		if err != nil {
			// names are cosmetic; the snapshot itself is stored.
			l.WithError(err).Warnf("Unable to name assets of [%s].", o.Scope())
		}
		return res.Assets, false, nil
	case TargetBlueprints:
		res, err := blueprint.SyncBlueprints(l, ctx, d.Db, d.Esi, d.Settings)(o)
		r.Blueprints = res
		return res.Blueprints, res.Skipped, err
	case TargetJobs:
		res, err := job.SyncJobs(l, ctx, d.Db, d.Esi, d.Settings)(o)
		r.Jobs = res
		return res.Created + res.Updated, res.Skipped, err
	}
	return 0, false, fmt.Errorf("unknown sync target %s", t)
}

// SyncAll syncs every owner with at most concurrency owners in flight. Every owner is attempted; the failures are
// returned together.
func SyncAll(l logrus.FieldLogger, ctx context.Context, d Dependencies, concurrency int) func(targets ...Target) error {
	return func(targets ...Target) error {
		span, ctx := opentracing.StartSpanFromContext(ctx, "synchronizer.all")
		defer span.Finish()

		os, err := owner.GetAll(l, d.Db)
		if err != nil {
			return err
		}
		if concurrency < 1 {
			concurrency = 1
		}

		var mu sync.Mutex
		var errs *multierror.Error
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for _, o := range os {
			o := o
			g.Go(func() error {
				_, err := SyncOwner(l, gctx, d)(o.Id(), targets...)
				if err != nil {
					mu.Lock()
					errs = multierror.Append(errs, fmt.Errorf("owner %d: %w", o.Id(), err))
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
		l.Infof("Synced [%d] owners.", len(os))
		return errs.ErrorOrNil()
	}
}

// RequestSync queues a sync of the owner on the command topic.
func RequestSync(l logrus.FieldLogger, p producer.Provider) func(ownerId uint32, userId uint32, targets ...Target) error {
	return func(ownerId uint32, userId uint32, targets ...Target) error {
		l.Debugf("Requesting sync of owner [%d] for user [%d].", ownerId, userId)
		return p(EnvCommandTopicIndustrySync)(commandProvider(ownerId, userId, targets))
	}
}

package asset

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
	"sort"
)

// NameableCategories hold the types players can name: celestials (containers), ships and deployables.
var NameableCategories = []uint32{universe.CategoryCelestial, universe.CategoryShip, universe.CategoryDeployable}

var requirement = owner.Requirement{
	CharacterScopes:   []string{credential.ScopeCharacterAssets},
	CorporationScopes: []string{credential.ScopeCorporationAssets},
	CorporationRole:   credential.RoleDirector,
}

// Result summarizes one asset sync.
type Result struct {
	// NotModified is set when ESI reported the snapshot unchanged since the stored etag.
	NotModified bool
	// Skipped is set when no credential qualified.
	Skipped    bool
	Assets     int
	Locations  int
	Unresolved int
}

func GetForScope(_ logrus.FieldLogger, db *gorm.DB) func(scope owner.Scope) ([]Model, error) {
	return func(scope owner.Scope) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForScope(scope), makeAsset)()
	}
}

type snapshot struct {
	assets []esi.AssetRestModel
	etag   string
}

func fetch(ctx context.Context, c *esi.Client, o owner.Model, token string) (snapshot, bool, error) {
	if !o.Corporation() {
		as, err := c.CharacterAssets(ctx, token, o.CharacterId())
		return snapshot{assets: as}, false, err
	}
	s, err := c.CorporationAssets(ctx, token, o.CorporationId(), o.AssetsETag())
	if err != nil {
		return snapshot{}, false, err
	}
	return snapshot{assets: s.Assets, etag: s.ETag}, s.NotModified, nil
}

// SyncAssets replaces the stored assets of the owner with the current ESI snapshot. Locations are resolved for
// corporation assets only, and each failed location is tried once per sync.
func SyncAssets(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client, s credential.Settings) func(o owner.Model) (Result, error) {
	return func(o owner.Model) (Result, error) {
		span, ctx := opentracing.StartSpanFromContext(ctx, "asset.sync")
		defer span.Finish()
		fl := l.WithField("owner_id", o.Id())

		cr, err := owner.Credential(fl, ctx, db, s, c)(o, requirement)
		if errors.Is(err, credential.ErrNotFound) {
			fl.Debugf("No credential qualifies to sync assets of [%s].", o.Scope())
			return Result{Skipped: true}, nil
		}
		if err != nil {
			return Result{}, err
		}

		snap, notModified, err := fetch(ctx, c, o, cr.AccessToken())
		if err != nil {
			return Result{}, fmt.Errorf("fetching assets of %s: %w", o.Scope(), err)
		}
		if notModified {
			fl.Debugf("Assets of [%s] not modified since [%s].", o.Scope(), o.AssetsETag())
			return Result{NotModified: true}, nil
		}

		types, err := ensureTypes(fl, ctx, db, c)(snap.assets)
		if err != nil {
			return Result{}, err
		}

		idx, err := location.GetIndex(fl, db)
		if err != nil {
			return Result{}, err
		}
		memo := location.NewFailureMemo()
		resolve := location.Resolve(fl, ctx, db, c)

		ordered := officesFirst(snap.assets)
		resolved := make([]location.Model, 0)
		ms := make([]Model, 0, len(ordered))
		for _, a := range ordered {
			if !types[a.TypeId] {
				fl.Warnf("Skipping item [%d] of unknown type [%d].", a.ItemId, a.TypeId)
				continue
			}

			if o.Corporation() && a.LocationFlag == location.FlagOfficeFolder {
				if _, ok := idx.Get(a.ItemId); !ok {
					m, ok, err := resolve(location.Request{LocationId: a.LocationId, Flag: a.LocationFlag, Token: cr.AccessToken(), ItemId: a.ItemId})
					if err != nil {
						fl.WithError(err).Debugf("Unable to resolve office [%d].", a.ItemId)
					} else if ok {
						resolved = append(resolved, m)
						idx.Put(m)
						if p, ok := m.Parent(); ok {
							idx.Put(p)
						}
					}
				}
			}

			b := newBuilder(o.Scope(), a.ItemId, a.TypeId).
				SetQuantity(a.Quantity).
				SetLocation(a.LocationId, a.LocationFlag).
				SetSingleton(a.IsSingleton, a.IsBlueprintCopy)

			if lm, ok := idx.Get(a.LocationId); ok {
				b.SetRefs(lm.Id(), lm.SystemId())
			} else if o.Corporation() && a.LocationFlag != location.FlagOfficeFolder && !memo.Failed(a.LocationId) {
				lm, ok, err := resolve(location.Request{LocationId: a.LocationId, Flag: a.LocationFlag, Token: cr.AccessToken(), ItemId: a.ItemId})
				if err != nil {
					memo.Record(a.LocationId)
				} else if ok {
					resolved = append(resolved, lm)
					idx.Put(lm)
					b.SetRefs(lm.Id(), lm.SystemId())
				}
			}
			ms = append(ms, b.Build())
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for _, m := range resolved {
				if err := location.Save(fl, tx)(m); err != nil {
					return err
				}
			}
			if err := replace(tx, o.Scope(), ms); err != nil {
				return err
			}
			if o.Corporation() {
				return owner.UpdateAssetsETag(fl, tx)(o.Id(), snap.etag)
			}
			return nil
		})
		if err != nil {
			fl.WithError(err).Errorf("Unable to store assets of [%s].", o.Scope())
			return Result{}, err
		}

		r := Result{Assets: len(ms), Locations: len(resolved), Unresolved: memo.Len()}
		fl.Infof("Synced [%d] assets of [%s], resolved [%d] locations, [%d] unresolvable.", r.Assets, o.Scope(), r.Locations, r.Unresolved)
		return r, nil
	}
}

// officesFirst orders offices ahead of everything else so items stored in an office find it already named.
func officesFirst(as []esi.AssetRestModel) []esi.AssetRestModel {
	result := make([]esi.AssetRestModel, len(as))
	copy(result, as)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LocationFlag == location.FlagOfficeFolder && result[j].LocationFlag != location.FlagOfficeFolder
	})
	return result
}

// ensureTypes makes sure every referenced type is stored and returns the set of known type ids.
func ensureTypes(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(as []esi.AssetRestModel) (map[uint32]bool, error) {
	return func(as []esi.AssetRestModel) (map[uint32]bool, error) {
		known, err := universe.GetTypeIds(db)
		if err != nil {
			return nil, err
		}
		for _, a := range as {
			if _, ok := known[a.TypeId]; ok {
				continue
			}
			_, err = universe.GetOrCreateType(l, ctx, db, c)(a.TypeId)
			known[a.TypeId] = err == nil
		}
		return known, nil
	}
}

// UpdateAssetNames fetches the player given names of the owner's nameable singleton assets.
func UpdateAssetNames(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client, s credential.Settings) func(o owner.Model) (int, error) {
	return func(o owner.Model) (int, error) {
		span, ctx := opentracing.StartSpanFromContext(ctx, "asset.names")
		defer span.Finish()
		fl := l.WithField("owner_id", o.Id())

		cr, err := owner.Credential(fl, ctx, db, s, c)(o, requirement)
		if errors.Is(err, credential.ErrNotFound) {
			fl.Debugf("No credential qualifies to name assets of [%s].", o.Scope())
			return 0, nil
		}
		if err != nil {
			return 0, err
		}

		ms, err := database.ModelSliceProvider[Model, entity](db)(getNameable(o.Scope(), NameableCategories), makeAsset)()
		if err != nil {
			return 0, err
		}
		ids := make([]int64, 0, len(ms))
		for _, m := range ms {
			ids = append(ids, m.ItemId())
		}

		named := 0
		for _, batch := range batches(ids, esi.MaxNamesPerRequest) {
			var ns []esi.NameRestModel
			if o.Corporation() {
				ns, err = c.CorporationAssetNames(ctx, cr.AccessToken(), o.CorporationId(), batch)
			} else {
				ns, err = c.CharacterAssetNames(ctx, cr.AccessToken(), o.CharacterId(), batch)
			}
			if err != nil {
				fl.WithError(err).Warnf("Unable to retrieve names of [%d] assets of [%s].", len(batch), o.Scope())
				return named, err
			}
			for _, n := range ns {
				if err = updateName(db, o.Scope(), n.ItemId, n.Name); err != nil {
					return named, err
				}
				named++
			}
		}
		fl.Debugf("Named [%d] assets of [%s].", named, o.Scope())
		return named, nil
	}
}

func batches(ids []int64, size int) [][]int64 {
	result := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		result = append(result, ids[start:end])
	}
	return result
}

type containerSource struct {
	l  logrus.FieldLogger
	db *gorm.DB
}

// ContainerSource exposes the stored assets to the office and container location upkeep.
func ContainerSource(l logrus.FieldLogger, db *gorm.DB) location.AssetSource {
	return containerSource{l: l, db: db}
}

func toContainer(m Model) location.ContainerAsset {
	return location.ContainerAsset{ItemId: m.itemId, LocationId: m.locationId, Name: m.name}
}

func (s containerSource) list(ep database.EntityProvider[[]entity]) ([]location.ContainerAsset, error) {
	ms, err := database.ModelSliceProvider[Model, entity](s.db)(ep, makeAsset)()
	if err != nil {
		return nil, err
	}
	result := make([]location.ContainerAsset, 0, len(ms))
	for _, m := range ms {
		result = append(result, toContainer(m))
	}
	return result, nil
}

func (s containerSource) find(kind owner.Kind, itemId int64) (location.ContainerAsset, bool, error) {
	m, err := database.ModelProvider[Model, entity](s.db)(getByItemId(kind, itemId), makeAsset)()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return location.ContainerAsset{}, false, nil
	}
	if err != nil {
		return location.ContainerAsset{}, false, err
	}
	return toContainer(m), true, nil
}

func (s containerSource) Offices() ([]location.ContainerAsset, error) {
	return s.list(getByFlag(owner.KindCorporation, location.FlagOfficeFolder))
}

func (s containerSource) Containers() ([]location.ContainerAsset, error) {
	return s.list(getContainers(owner.KindCorporation))
}

func (s containerSource) CorporationAsset(itemId int64) (location.ContainerAsset, bool, error) {
	return s.find(owner.KindCorporation, itemId)
}

func (s containerSource) CharacterAsset(itemId int64) (location.ContainerAsset, bool, error) {
	return s.find(owner.KindCharacter, itemId)
}

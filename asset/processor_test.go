package asset_test

import (
	"aa-wizard-industry/asset"
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/location"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/universe"
	"context"
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const (
	characterId   = uint32(90000001)
	corporationId = uint32(98000001)
	userId        = uint32(1)
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	for _, migrator := range []func(db *gorm.DB) error{universe.Migration, location.Migration, character.Migration, credential.Migration, owner.Migration, asset.Migration} {
		require.NoError(t, migrator(db))
	}

	require.NoError(t, universe.SaveGroup(db)(universe.NewGroup(18, "Mineral", 4)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(34, "Tritanium", 18, 1857, true)))
	require.NoError(t, universe.SaveGroup(db)(universe.NewGroup(448, "Audit Log Secure Container", universe.CategoryCelestial)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(17366, "Station Container", 448, 0, true)))
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testSettings() credential.Settings {
	var key [32]byte
	return credential.NewSettings(credential.NewVault(key), &oauth2.Config{})
}

type fakeEsi struct {
	assets    atomic.Value
	roles     string
	etag      string
	calls     map[string]*int32
	nameCalls int32
	maxBatch  int32
}

func newFakeEsi(assets string) *fakeEsi {
	f := &fakeEsi{roles: `{"roles":["Director"]}`, etag: `"v1"`, calls: map[string]*int32{}}
	f.assets.Store(assets)
	for _, k := range []string{"roles", "assets", "station", "system", "structure"} {
		f.calls[k] = new(int32)
	}
	return f
}

func (f *fakeEsi) count(name string) int32 {
	return atomic.LoadInt32(f.calls[name])
}

func (f *fakeEsi) client(t *testing.T) *esi.Client {
	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/characters/%d/roles/", characterId), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["roles"], 1)
		_, _ = w.Write([]byte(f.roles))
	})
	mux.HandleFunc(fmt.Sprintf("/characters/%d/assets/", characterId), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["assets"], 1)
		_, _ = w.Write([]byte(f.assets.Load().(string)))
	})
	mux.HandleFunc(fmt.Sprintf("/corporations/%d/assets/", corporationId), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["assets"], 1)
		if r.Header.Get("If-None-Match") == f.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", f.etag)
		_, _ = w.Write([]byte(f.assets.Load().(string)))
	})
	mux.HandleFunc(fmt.Sprintf("/characters/%d/assets/names/", characterId), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.nameCalls, 1)
		var ids []int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		if int32(len(ids)) > atomic.LoadInt32(&f.maxBatch) {
			atomic.StoreInt32(&f.maxBatch, int32(len(ids)))
		}
		res := make([]esi.NameRestModel, 0, len(ids))
		for _, id := range ids {
			res = append(res, esi.NameRestModel{ItemId: id, Name: fmt.Sprintf("Box %d", id)})
		}
		_ = json.NewEncoder(w).Encode(res)
	})
	mux.HandleFunc("/universe/stations/60003760/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["station"], 1)
		_, _ = w.Write([]byte(`{"station_id":60003760,"name":"Jita IV - Moon 4 - Caldari Navy Assembly Plant","system_id":30000142,"type_id":52678}`))
	})
	mux.HandleFunc("/universe/systems/30000142/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["system"], 1)
		_, _ = w.Write([]byte(`{"system_id":30000142,"name":"Jita","constellation_id":20000020,"security_status":0.9459}`))
	})
	mux.HandleFunc("/universe/structures/1035466617946/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(f.calls["structure"], 1)
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
}

func setupOwner(t *testing.T, db *gorm.DB, kind owner.Kind) owner.Model {
	s := testSettings()
	_, err := character.Link(testLogger(), db)(characterId, "Wizard", corporationId, userId)
	require.NoError(t, err)
	if kind == owner.KindCorporation {
		_, err = credential.Create(testLogger(), db, s)(characterId, "access", "refresh", time.Now().Add(time.Hour), owner.CorporationSetupScopes)
		require.NoError(t, err)
		o, err := owner.SetupCorporation(testLogger(), db, s)(userId, characterId)
		require.NoError(t, err)
		return o
	}
	_, err = credential.Create(testLogger(), db, s)(characterId, "access", "refresh", time.Now().Add(time.Hour), owner.CharacterSetupScopes)
	require.NoError(t, err)
	o, err := owner.SetupCharacter(testLogger(), db, s)(userId, characterId)
	require.NoError(t, err)
	return o
}

func TestSyncCorporationAssetsResolvesStation(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCorporation)
	f := newFakeEsi(`[{"item_id":1001,"type_id":34,"quantity":500,"location_id":60003760,"location_flag":"Hangar","location_type":"station","is_singleton":false}]`)

	res, err := asset.SyncAssets(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Assets)
	assert.Equal(t, 1, res.Locations)

	l, err := location.GetById(testLogger(), db)(60003760)
	require.NoError(t, err)
	assert.Equal(t, "Jita IV - Moon 4 - Caldari Navy Assembly Plant", l.Name())
	assert.Equal(t, uint32(30000142), l.SystemId())

	as, err := asset.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, int64(60003760), as[0].LocationRef())
	assert.Equal(t, uint32(30000142), as[0].SystemRef())
	assert.Equal(t, int32(500), as[0].Quantity())

	stored, err := owner.GetById(testLogger(), db)(o.Id())
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, stored.AssetsETag())
}

func TestSyncCorporationAssetsNotModified(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCorporation)
	f := newFakeEsi(`[{"item_id":1001,"type_id":34,"quantity":500,"location_id":60003760,"location_flag":"Hangar","is_singleton":false}]`)
	c := f.client(t)

	_, err := asset.SyncAssets(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)

	o, err = owner.GetById(testLogger(), db)(o.Id())
	require.NoError(t, err)
	res, err := asset.SyncAssets(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.True(t, res.NotModified)
	assert.Equal(t, int32(1), f.count("station"))

	as, err := asset.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	assert.Len(t, as, 1)
}

func TestSyncAssetsEmptySnapshotRemovesAssets(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCharacter)
	f := newFakeEsi(`[{"item_id":1,"type_id":34,"quantity":1,"location_id":60003760,"location_flag":"Hangar"},{"item_id":2,"type_id":34,"quantity":2,"location_id":60003760,"location_flag":"Hangar"}]`)
	c := f.client(t)

	res, err := asset.SyncAssets(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Assets)
	assert.Equal(t, int32(0), f.count("station"), "character assets are not resolved")

	f.assets.Store(`[]`)
	_, err = asset.SyncAssets(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)

	as, err := asset.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	assert.Empty(t, as)
}

func TestSyncAssetsSkipsUnknownTypes(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCharacter)
	f := newFakeEsi(`[{"item_id":1,"type_id":34,"quantity":1,"location_id":60003760,"location_flag":"Hangar"},{"item_id":2,"type_id":99999,"quantity":1,"location_id":60003760,"location_flag":"Hangar"}]`)

	res, err := asset.SyncAssets(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Assets)
}

func TestSyncAssetsStructureForbiddenTriedOnce(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCorporation)
	f := newFakeEsi(`[{"item_id":1,"type_id":34,"quantity":1,"location_id":1035466617946,"location_flag":"CorpSAG1"},{"item_id":2,"type_id":34,"quantity":1,"location_id":1035466617946,"location_flag":"CorpSAG2"}]`)

	res, err := asset.SyncAssets(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Assets)
	assert.Equal(t, 1, res.Unresolved)
	assert.Equal(t, int32(1), f.count("structure"))

	as, err := asset.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	for _, a := range as {
		assert.Zero(t, a.LocationRef())
	}
}

func TestSyncAssetsWithoutRoleIsNoop(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCorporation)
	f := newFakeEsi(`[{"item_id":1,"type_id":34,"quantity":1,"location_id":60003760,"location_flag":"Hangar"}]`)
	f.roles = `{"roles":["Accountant"]}`

	res, err := asset.SyncAssets(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, int32(0), f.count("assets"))
}

func TestUpdateAssetNamesBatches(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCharacter)

	items := make([]string, 0, 150)
	for i := 1; i <= 150; i++ {
		items = append(items, fmt.Sprintf(`{"item_id":%d,"type_id":17366,"quantity":1,"location_id":60003760,"location_flag":"Hangar","is_singleton":true}`, i))
	}
	items = append(items, `{"item_id":500,"type_id":34,"quantity":1,"location_id":60003760,"location_flag":"Hangar","is_singleton":false}`)
	f := newFakeEsi("[" + strings.Join(items, ",") + "]")
	c := f.client(t)

	_, err := asset.SyncAssets(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)

	named, err := asset.UpdateAssetNames(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 150, named)
	assert.Equal(t, int32(2), atomic.LoadInt32(&f.nameCalls))
	assert.LessOrEqual(t, atomic.LoadInt32(&f.maxBatch), int32(esi.MaxNamesPerRequest))

	as, err := asset.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	for _, a := range as {
		if a.TypeId() == 17366 {
			assert.Equal(t, fmt.Sprintf("Box %d", a.ItemId()), a.Name())
		} else {
			assert.Empty(t, a.Name())
		}
	}
}

func TestContainerSource(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db, owner.KindCorporation)
	f := newFakeEsi(`[{"item_id":7001,"type_id":17366,"quantity":1,"location_id":60003760,"location_flag":"Hangar","is_singleton":true}]`)

	_, err := asset.SyncAssets(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)

	src := asset.ContainerSource(testLogger(), db)
	cs, err := src.Containers()
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, int64(7001), cs[0].ItemId)

	_, ok, err := src.CharacterAsset(7001)
	require.NoError(t, err)
	assert.False(t, ok)
	a, ok, err := src.CorporationAsset(7001)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(60003760), a.LocationId)

	n, err := location.CreateContainerLocations(testLogger(), db, src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

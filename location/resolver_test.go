package location_test

import (
	"aa-wizard-industry/esi"
	"aa-wizard-industry/location"
	"aa-wizard-industry/universe"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, universe.Migration(db))
	require.NoError(t, location.Migration(db))
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

type fakeEsi struct {
	calls int32
}

func (f *fakeEsi) client(t *testing.T) *esi.Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/universe/stations/60003760/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.calls, 1)
		_, _ = w.Write([]byte(`{"station_id":60003760,"name":"Jita IV - Moon 4 - Caldari Navy Assembly Plant","system_id":30000142,"type_id":52678}`))
	})
	mux.HandleFunc("/universe/systems/30000142/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.calls, 1)
		_, _ = w.Write([]byte(`{"system_id":30000142,"name":"Jita","constellation_id":20000020,"security_status":0.9459}`))
	})
	mux.HandleFunc("/universe/structures/1035466617946/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.calls, 1)
		if r.Header.Get("Authorization") != "Bearer docking-rights" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"name":"Perimeter - Tranquility Trading Tower","owner_id":98000001,"solar_system_id":30000142,"type_id":35834}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
}

func TestResolveCachedMakesNoCall(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}
	require.NoError(t, location.Save(testLogger(), db)(location.NewModel(60003760, "Cached Station", 30000142, 0)))

	m, ok, err := location.Resolve(testLogger(), context.Background(), db, f.client(t))(location.Request{LocationId: 60003760, Flag: "Hangar"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cached Station", m.Name())

	m, ok, err = location.Resolve(testLogger(), context.Background(), db, f.client(t))(location.Request{LocationId: 60003760, Flag: "OfficeFolder", ItemId: 1040000000002})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Office #1040000000002", m.Name())
	assert.Equal(t, int64(60003760), m.ParentId())
	assert.Equal(t, uint32(30000142), m.SystemId())
	assert.Equal(t, int32(0), f.calls)
}

func TestResolveDisallowedFlagMakesNoCall(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}
	for _, flag := range []string{"Cargo", "HiSlot0", "DroneBay", "FleetHangar"} {
		_, ok, err := location.Resolve(testLogger(), context.Background(), db, f.client(t))(location.Request{LocationId: 1035466617946, Flag: flag, Token: "docking-rights"})
		assert.NoError(t, err)
		assert.False(t, ok, flag)
	}
	assert.Equal(t, int32(0), f.calls)
}

func TestResolveStation(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}
	m, ok, err := location.Resolve(testLogger(), context.Background(), db, f.client(t))(location.Request{LocationId: 60003760})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jita IV - Moon 4 - Caldari Navy Assembly Plant", m.Name())
	assert.Equal(t, uint32(30000142), m.SystemId())

	_, err = location.GetById(testLogger(), db)(60003760)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "resolving should not store the location")
}

func TestResolveSystemAndAssetSafety(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}
	c := f.client(t)

	m, ok, err := location.Resolve(testLogger(), context.Background(), db, c)(location.Request{LocationId: 30000142, Flag: "Hangar"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jita", m.Name())

	m, ok, err = location.Resolve(testLogger(), context.Background(), db, c)(location.Request{LocationId: location.AssetSafetyId, Flag: "AssetSafety"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Asset Safety", m.Name())
}

func TestResolveStructure(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}
	c := f.client(t)

	_, ok, err := location.Resolve(testLogger(), context.Background(), db, c)(location.Request{LocationId: 1035466617946, Flag: "CorpSAG1", Token: "no-rights"})
	assert.False(t, ok)
	assert.True(t, errors.Is(err, location.ErrUnresolvable))

	m, ok, err := location.Resolve(testLogger(), context.Background(), db, c)(location.Request{LocationId: 1035466617946, Flag: "CorpSAG1", Token: "docking-rights"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Perimeter - Tranquility Trading Tower", m.Name())
	assert.Equal(t, uint32(30000142), m.SystemId())
}

func TestResolveOffice(t *testing.T) {
	db := testDatabase(t)
	f := &fakeEsi{}

	m, ok, err := location.Resolve(testLogger(), context.Background(), db, f.client(t))(location.Request{LocationId: 60003760, Flag: "OfficeFolder", ItemId: 1040000000001})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1040000000001), m.Id())
	assert.Equal(t, "Office #1040000000001", m.Name())
	assert.Equal(t, int64(60003760), m.ParentId())
	assert.Equal(t, uint32(30000142), m.SystemId())

	require.NoError(t, location.Save(testLogger(), db)(m))
	p, err := location.GetById(testLogger(), db)(60003760)
	require.NoError(t, err)
	assert.Equal(t, "Jita IV - Moon 4 - Caldari Navy Assembly Plant", p.Name())
}

func TestSaveUpdatesInPlace(t *testing.T) {
	db := testDatabase(t)
	require.NoError(t, location.Save(testLogger(), db)(location.NewModel(1035466617946, "Old Name", 30000142, 0)))
	require.NoError(t, location.Save(testLogger(), db)(location.NewModel(1035466617946, "New Name", 30000142, 0)))

	ms, err := location.GetAll(testLogger(), db)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "New Name", ms[0].Name())
}

func TestFailureMemo(t *testing.T) {
	memo := location.NewFailureMemo()
	assert.False(t, memo.Failed(1035466617946))
	memo.Record(1035466617946)
	assert.True(t, memo.Failed(1035466617946))
	assert.Equal(t, 1, memo.Len())
}

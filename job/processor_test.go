package job_test

import (
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/job"
	"aa-wizard-industry/location"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/universe"
	"context"
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
	"sync/atomic"
	"testing"
	"time"
)

const characterId = uint32(90000001)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	for _, migrator := range []func(db *gorm.DB) error{universe.Migration, location.Migration, character.Migration, credential.Migration, owner.Migration, job.Migration} {
		require.NoError(t, migrator(db))
	}
	require.NoError(t, universe.SaveGroup(db)(universe.NewGroup(105, "Frigate Blueprint", 9)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(681, "Rifter Blueprint", 105, 0, true)))
	require.NoError(t, universe.SaveGroup(db)(universe.NewGroup(25, "Frigate", 6)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(587, "Rifter", 25, 0, true)))
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

func setupOwner(t *testing.T, db *gorm.DB) owner.Model {
	s := testSettings()
	_, err := character.Link(testLogger(), db)(characterId, "Wizard", 98000001, 1)
	require.NoError(t, err)
	_, err = credential.Create(testLogger(), db, s)(characterId, "access", "refresh", time.Now().Add(time.Hour), owner.CharacterSetupScopes)
	require.NoError(t, err)
	o, err := owner.SetupCharacter(testLogger(), db, s)(1, characterId)
	require.NoError(t, err)
	return o
}

func jobJson(jobId uint32, status string, blueprintTypeId uint32) string {
	return fmt.Sprintf(`{"job_id":%d,"activity_id":1,"blueprint_id":1001,"blueprint_location_id":60003760,"blueprint_type_id":%d,`+
		`"cost":1500.5,"duration":3600,"end_date":"2026-10-17T13:00:00Z","facility_id":1035466617946,"installer_id":%d,"licensed_runs":10,`+
		`"output_location_id":60003760,"product_type_id":587,"runs":10,"start_date":"2026-10-17T12:00:00Z","station_id":60003760,"status":"%s"}`,
		jobId, blueprintTypeId, characterId, status)
}

type fakeEsi struct {
	jobs atomic.Value
}

func (f *fakeEsi) client(t *testing.T) *esi.Client {
	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/characters/%d/industry/jobs/", characterId), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_completed"))
		_, _ = w.Write([]byte(f.jobs.Load().(string)))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
}

func TestSyncJobsUpdatesInPlace(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db)
	f := &fakeEsi{}
	f.jobs.Store("[" + jobJson(500, job.StatusActive, 681) + "]")
	c := f.client(t)

	res, err := job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	f.jobs.Store("[" + jobJson(500, job.StatusDelivered, 681) + "]")
	res, err = job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)

	js, err := job.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Equal(t, uint32(500), js[0].JobId())
	assert.Equal(t, job.StatusDelivered, js[0].Status())
}

func TestSyncJobsIdempotent(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db)
	f := &fakeEsi{}
	f.jobs.Store("[" + jobJson(500, job.StatusActive, 681) + "," + jobJson(501, job.StatusReady, 681) + "]")
	c := f.client(t)

	_, err := job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	first, err := job.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)

	_, err = job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	second, err := job.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)

	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, job.Transform(first[i]), job.Transform(second[i]))
	}
}

func TestSyncJobsAttachesKnownLocations(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db)
	require.NoError(t, location.Save(testLogger(), db)(location.NewModel(60003760, "Jita IV - Moon 4 - Caldari Navy Assembly Plant", 30000142, 0)))
	f := &fakeEsi{}
	f.jobs.Store("[" + jobJson(500, job.StatusActive, 681) + "]")
	c := f.client(t)

	_, err := job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	js, err := job.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Equal(t, int64(60003760), js[0].Refs().Location)
	assert.Equal(t, int64(60003760), js[0].Refs().BlueprintLocation)
	assert.Zero(t, js[0].Refs().Facility)

	require.NoError(t, location.Save(testLogger(), db)(location.NewModel(1035466617946, "Perimeter - Tranquility Trading Tower", 30000144, 0)))
	_, err = job.SyncJobs(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	js, err = job.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	assert.Equal(t, int64(1035466617946), js[0].Refs().Facility)
	assert.Equal(t, int64(60003760), js[0].Refs().Location)
}

func TestSyncJobsSkipsUnknownTypes(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db)
	f := &fakeEsi{}
	f.jobs.Store("[" + jobJson(500, job.StatusActive, 99999) + "," + jobJson(501, job.StatusActive, 681) + "]")

	res, err := job.SyncJobs(testLogger(), context.Background(), db, f.client(t), testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Ignored)
}

func TestSyncJobsWithoutCredentialIsNoop(t *testing.T) {
	db := testDatabase(t)
	s := testSettings()
	_, err := character.Link(testLogger(), db)(characterId, "Wizard", 98000001, 1)
	require.NoError(t, err)
	_, err = credential.Create(testLogger(), db, s)(characterId, "access", "refresh", time.Now().Add(time.Hour), owner.CharacterSetupScopes)
	require.NoError(t, err)
	o, err := owner.SetupCharacter(testLogger(), db, s)(1, characterId)
	require.NoError(t, err)
	creds, err := credential.GetForCharacters(testLogger(), db, s)(characterId)
	require.NoError(t, err)
	require.NoError(t, credential.Delete(testLogger(), db)(creds[0].Id()))

	f := &fakeEsi{}
	f.jobs.Store("[]")
	res, err := job.SyncJobs(testLogger(), context.Background(), db, f.client(t), s)(o)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

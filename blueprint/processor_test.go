package blueprint_test

import (
	"aa-wizard-industry/blueprint"
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
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
	for _, migrator := range []func(db *gorm.DB) error{universe.Migration, character.Migration, credential.Migration, owner.Migration, blueprint.Migration} {
		require.NoError(t, migrator(db))
	}
	require.NoError(t, universe.SaveGroup(db)(universe.NewGroup(105, "Frigate Blueprint", 9)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(681, "Rifter Blueprint", 105, 0, true)))
	require.NoError(t, universe.SaveType(db)(universe.NewType(689, "Slasher Blueprint", 105, 0, true)))
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

func testEsi(t *testing.T, body *atomic.Value) *esi.Client {
	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/characters/%d/blueprints/", characterId), func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body.Load().(string)))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
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

func TestSyncBlueprints(t *testing.T) {
	db := testDatabase(t)
	o := setupOwner(t, db)
	var body atomic.Value
	body.Store(`[` +
		`{"item_id":1,"location_flag":"Hangar","location_id":60003760,"material_efficiency":10,"quantity":-1,"runs":-1,"time_efficiency":20,"type_id":681},` +
		`{"item_id":2,"location_flag":"Hangar","location_id":60003760,"material_efficiency":0,"quantity":-2,"runs":5,"time_efficiency":0,"type_id":689},` +
		`{"item_id":3,"location_flag":"Hangar","location_id":60003760,"material_efficiency":0,"quantity":-1,"runs":-1,"time_efficiency":0,"type_id":99999}]`)
	c := testEsi(t, &body)

	res, err := blueprint.SyncBlueprints(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Blueprints)

	owned, err := blueprint.OwnedOriginals(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	assert.Equal(t, map[uint32]bool{681: true}, owned)

	body.Store(`[]`)
	_, err = blueprint.SyncBlueprints(testLogger(), context.Background(), db, c, testSettings())(o)
	require.NoError(t, err)
	bs, err := blueprint.GetForScope(testLogger(), db)(o.Scope())
	require.NoError(t, err)
	assert.Empty(t, bs)
}

func TestOwnedOriginalsWithoutScopes(t *testing.T) {
	db := testDatabase(t)
	owned, err := blueprint.OwnedOriginals(testLogger(), db)()
	require.NoError(t, err)
	assert.Empty(t, owned)
}

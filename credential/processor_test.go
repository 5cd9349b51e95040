package credential_test

import (
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
	"context"
	"errors"
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
	"testing"
	"time"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, credential.Migration(db))
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testVault() credential.Vault {
	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")
	return credential.NewVault(key)
}

func testSettings(tokenUrl string) credential.Settings {
	return credential.NewSettings(testVault(), &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenUrl, AuthStyle: oauth2.AuthStyleInHeader},
	})
}

// testEsi grants the Director role to the characters listed and answers 403 for the rest.
func testEsi(t *testing.T, directors ...uint32) *esi.Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, d := range directors {
			if r.URL.Path == fmt.Sprintf("/characters/%d/roles/", d) {
				_, _ = w.Write([]byte(`{"roles":["Director","Factory_Manager"]}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"roles":["Hangar_Take_1"]}`))
	}))
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
}

func TestVaultRoundTrip(t *testing.T) {
	v := testVault()
	sealed, err := v.Seal("refresh-me")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "refresh-me")

	plain, err := v.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "refresh-me", plain)

	_, err = v.Open(sealed[:len(sealed)-4] + "AAAA")
	assert.True(t, errors.Is(err, credential.ErrSealed))
}

func TestRefreshExpired(t *testing.T) {
	db := testDatabase(t)
	var refreshed []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		refreshed = append(refreshed, r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":1199,"refresh_token":"rotated"}`))
	}))
	defer srv.Close()
	s := testSettings(srv.URL)

	m, err := credential.Create(testLogger(), db, s)(90000001, "stale", "original", time.Now().Add(-time.Hour), []string{credential.ScopeCharacterAssets})
	require.NoError(t, err)

	m, err = credential.Refresh(testLogger(), context.Background(), db, s)(m)
	require.NoError(t, err)
	assert.Equal(t, "fresh", m.AccessToken())
	assert.Equal(t, []string{"original"}, refreshed)

	stored, err := credential.GetById(testLogger(), db, s)(m.Id())
	require.NoError(t, err)
	assert.Equal(t, "fresh", stored.AccessToken())
	assert.True(t, stored.Valid(time.Now(), time.Minute))

	_, err = credential.Refresh(testLogger(), context.Background(), db, s)(stored)
	require.NoError(t, err)
	assert.Len(t, refreshed, 1, "a valid token should not be refreshed")
}

func TestCandidatesOrder(t *testing.T) {
	scopes := []string{credential.ScopeCorporationAssets}
	ms := []credential.Model{
		credential.NewModel(1, 100, "a", "r", time.Time{}, scopes),
		credential.NewModel(2, 200, "a", "r", time.Time{}, scopes),
		credential.NewModel(3, 300, "a", "r", time.Time{}, nil),
		credential.NewModel(4, 200, "a", "r", time.Time{}, scopes),
	}
	got := credential.Candidates(credential.Query{PreferredCharacterId: 200, Scopes: scopes}, ms)
	ids := make([]uint32, 0)
	for _, m := range got {
		ids = append(ids, m.Id())
	}
	assert.Equal(t, []uint32{2, 4, 1}, ids)
}

func TestSelectFirstMatch(t *testing.T) {
	db := testDatabase(t)
	s := testSettings("http://127.0.0.1:0")
	scopes := []string{credential.ScopeCorporationAssets, credential.ScopeCharacterRoles}
	valid := time.Now().Add(time.Hour)

	_, err := credential.Create(testLogger(), db, s)(100, "a", "r", valid, scopes)
	require.NoError(t, err)
	second, err := credential.Create(testLogger(), db, s)(200, "b", "r", valid, scopes)
	require.NoError(t, err)
	_, err = credential.Create(testLogger(), db, s)(300, "c", "r", valid, scopes)
	require.NoError(t, err)

	c := testEsi(t, 200, 300)
	m, err := credential.Select(testLogger(), context.Background(), db, s, c)(credential.Query{
		PreferredCharacterId: 100,
		CharacterIds:         []uint32{100, 200, 300},
		Scopes:               []string{credential.ScopeCorporationAssets},
		Role:                 credential.RoleDirector,
	})
	require.NoError(t, err)
	assert.Equal(t, second.Id(), m.Id())
}

func TestSelectNone(t *testing.T) {
	db := testDatabase(t)
	s := testSettings("http://127.0.0.1:0")
	_, err := credential.Create(testLogger(), db, s)(100, "a", "r", time.Now().Add(time.Hour), []string{credential.ScopeCharacterAssets})
	require.NoError(t, err)

	_, err = credential.Select(testLogger(), context.Background(), db, s, testEsi(t))(credential.Query{
		PreferredCharacterId: 100,
		Scopes:               []string{credential.ScopeCorporationAssets},
		Role:                 credential.RoleDirector,
	})
	assert.True(t, errors.Is(err, credential.ErrNotFound))

	_, err = credential.Select(testLogger(), context.Background(), db, s, testEsi(t))(credential.Query{
		PreferredCharacterId: 100,
		Scopes:               []string{credential.ScopeCharacterAssets},
	})
	assert.NoError(t, err)
}

package owner_test

import (
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/owner"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/oauth2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"testing"
	"time"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	for _, migrator := range []func(db *gorm.DB) error{character.Migration, credential.Migration, owner.Migration} {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
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

func TestSetupCorporation(t *testing.T) {
	db := testDatabase(t)
	s := testSettings()
	_, _ = character.Link(testLogger(), db)(90000001, "Wizard", 98000001, 1)
	_, err := credential.Create(testLogger(), db, s)(90000001, "a", "r", time.Now().Add(time.Hour), owner.CorporationSetupScopes)
	if err != nil {
		t.Fatalf("Unable to create credential: %v", err)
	}

	first, err := owner.SetupCorporation(testLogger(), db, s)(1, 90000001)
	if err != nil {
		t.Fatalf("Unable to set up corporation: %v", err)
	}
	if first.Scope() != (owner.Scope{Kind: owner.KindCorporation, Id: 98000001}) {
		t.Fatalf("Unexpected scope %s", first.Scope())
	}

	second, err := owner.SetupCorporation(testLogger(), db, s)(1, 90000001)
	if err != nil {
		t.Fatalf("Unable to set up corporation again: %v", err)
	}
	if first.Id() != second.Id() {
		t.Fatalf("Re-setup should keep owner %d, got %d", first.Id(), second.Id())
	}
	os, _ := owner.GetAll(testLogger(), db)
	if len(os) != 1 {
		t.Fatalf("Expected 1 owner, got %d", len(os))
	}
}

func TestSetupNotOwned(t *testing.T) {
	db := testDatabase(t)
	s := testSettings()
	_, _ = character.Link(testLogger(), db)(90000001, "Wizard", 98000001, 1)

	_, err := owner.SetupCorporation(testLogger(), db, s)(2, 90000001)
	if !errors.Is(err, owner.ErrNotOwned) {
		t.Fatalf("Expected not owned, got %v", err)
	}
	expected := "You can only use your main or alt characters to add corporations. However, character Wizard is neither."
	if err.Error() != expected {
		t.Fatalf("Unexpected message %q", err.Error())
	}
}

func TestSetupMissingScopes(t *testing.T) {
	db := testDatabase(t)
	s := testSettings()
	_, _ = character.Link(testLogger(), db)(90000001, "Wizard", 98000001, 1)
	_, _ = credential.Create(testLogger(), db, s)(90000001, "a", "r", time.Now().Add(time.Hour), owner.CharacterSetupScopes)

	_, err := owner.SetupCorporation(testLogger(), db, s)(1, 90000001)
	if !errors.Is(err, owner.ErrMissingScopes) {
		t.Fatalf("Expected missing scopes, got %v", err)
	}
	m, err := owner.SetupCharacter(testLogger(), db, s)(1, 90000001)
	if err != nil {
		t.Fatalf("Unable to set up character: %v", err)
	}
	if m.Scope() != (owner.Scope{Kind: owner.KindCharacter, Id: 90000001}) {
		t.Fatalf("Unexpected scope %s", m.Scope())
	}
}

func TestUpdateAssetsETag(t *testing.T) {
	db := testDatabase(t)
	s := testSettings()
	_, _ = character.Link(testLogger(), db)(90000001, "Wizard", 98000001, 1)
	_, _ = credential.Create(testLogger(), db, s)(90000001, "a", "r", time.Now().Add(time.Hour), owner.CorporationSetupScopes)
	m, _ := owner.SetupCorporation(testLogger(), db, s)(1, 90000001)

	if err := owner.UpdateAssetsETag(testLogger(), db)(m.Id(), `"abc"`); err != nil {
		t.Fatalf("Unable to update etag: %v", err)
	}
	m, _ = owner.GetById(testLogger(), db)(m.Id())
	if m.AssetsETag() != `"abc"` {
		t.Fatalf("Etag should be stored, was %q", m.AssetsETag())
	}
}

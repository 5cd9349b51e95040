package permission_test

import (
	"aa-wizard-industry/permission"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"testing"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err = permission.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestAssignReplaces(t *testing.T) {
	db := testDatabase(t)

	err := permission.Assign(testLogger(), db)(7, []string{permission.BasicAccess, permission.AddCharacter})
	if err != nil {
		t.Fatalf("Unable to assign permissions: %v", err)
	}
	err = permission.Assign(testLogger(), db)(7, []string{permission.BasicAccess, permission.BlueprintCatalog, permission.BasicAccess})
	if err != nil {
		t.Fatalf("Unable to reassign permissions: %v", err)
	}

	ps, err := permission.GetForUser(testLogger(), db)(7)
	if err != nil {
		t.Fatalf("Unable to get permissions: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("Expected 2 permissions, got %d", len(ps))
	}
	ok, _ := permission.Has(db)(7, permission.AddCharacter)
	if ok {
		t.Fatalf("Permission %s should have been revoked", permission.AddCharacter)
	}
	ok, _ = permission.Has(db)(7, permission.BlueprintCatalog)
	if !ok {
		t.Fatalf("Permission %s should be held", permission.BlueprintCatalog)
	}
}

func TestAssignUnknown(t *testing.T) {
	db := testDatabase(t)
	err := permission.Assign(testLogger(), db)(7, []string{"fly_titan"})
	if !errors.Is(err, permission.ErrUnknown) {
		t.Fatalf("Expected unknown permission, got %v", err)
	}
}

func TestBootstrap(t *testing.T) {
	db := testDatabase(t)
	t.Setenv(permission.EnvAdministrators, "1, x,2")

	if err := permission.Bootstrap(testLogger(), db); err != nil {
		t.Fatalf("Unable to bootstrap: %v", err)
	}
	for _, id := range []uint32{1, 2} {
		ok, _ := permission.Has(db)(id, permission.Administrate)
		if !ok {
			t.Fatalf("User %d should be an administrator", id)
		}
	}
}

package character_test

import (
	"aa-wizard-industry/character"
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
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = character.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestLinkAndGet(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	_, err := character.Link(l, db)(2112000002, "Alt", 98000001, 7)
	if err != nil {
		t.Fatalf("Failed to link character: %v", err)
	}
	_, err = character.Link(l, db)(2112000001, "Main", 98000001, 7)
	if err != nil {
		t.Fatalf("Failed to link character: %v", err)
	}

	c, err := character.GetById(l, db)(2112000001)
	if err != nil {
		t.Fatalf("Failed to retrieve character: %v", err)
	}
	if c.Name() != "Main" || c.CorporationId() != 98000001 || c.UserId() != 7 {
		t.Fatalf("Unexpected character [%d] [%s] [%d] [%d].", c.Id(), c.Name(), c.CorporationId(), c.UserId())
	}

	cs, err := character.GetForUser(l, db)(7)
	if err != nil {
		t.Fatalf("Failed to retrieve characters: %v", err)
	}
	if len(cs) != 2 || cs[0].Id() != 2112000001 {
		t.Fatalf("Expected two characters in id order, got %d.", len(cs))
	}

	cs, err = character.GetForCorporation(l, db)(98000001)
	if err != nil {
		t.Fatalf("Failed to retrieve characters: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("Expected two corporation characters, got %d.", len(cs))
	}
}

func TestLinkMovesCharacterBetweenUsers(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	if _, err := character.Link(l, db)(2112000001, "Main", 98000001, 7); err != nil {
		t.Fatalf("Failed to link character: %v", err)
	}
	if _, err := character.Link(l, db)(2112000001, "Main", 98000002, 8); err != nil {
		t.Fatalf("Failed to relink character: %v", err)
	}

	c, err := character.GetById(l, db)(2112000001)
	if err != nil {
		t.Fatalf("Failed to retrieve character: %v", err)
	}
	if c.UserId() != 8 || c.CorporationId() != 98000002 {
		t.Fatalf("Expected character to move to user 8, got %d.", c.UserId())
	}
	cs, _ := character.GetForUser(l, db)(7)
	if len(cs) != 0 {
		t.Fatalf("Expected previous user to hold no characters, got %d.", len(cs))
	}
}

func TestUnlink(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	if _, err := character.Link(l, db)(2112000001, "Main", 98000001, 7); err != nil {
		t.Fatalf("Failed to link character: %v", err)
	}
	if err := character.Unlink(l, db)(2112000001); err != nil {
		t.Fatalf("Failed to unlink character: %v", err)
	}
	_, err := character.GetById(l, db)(2112000001)
	if !errors.Is(err, character.ErrNotFound) {
		t.Fatalf("Expected not found, got %v.", err)
	}
}

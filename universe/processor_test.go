package universe_test

import (
	"aa-wizard-industry/esi"
	"aa-wizard-industry/universe"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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

	if err = universe.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testEsi(t *testing.T, calls *int32) *esi.Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/universe/types/34/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		_, _ = w.Write([]byte(`{"type_id":34,"name":"Tritanium","group_id":18,"market_group_id":1857,"published":true}`))
	})
	mux.HandleFunc("/universe/groups/18/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		_, _ = w.Write([]byte(`{"group_id":18,"name":"Mineral","category_id":4,"published":true}`))
	})
	mux.HandleFunc("/universe/systems/30000142/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		_, _ = w.Write([]byte(`{"system_id":30000142,"name":"Jita","constellation_id":20000020,"security_status":0.9459}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return esi.NewClient(srv.URL)
}

func TestGetOrCreateTypeFetchesOnce(t *testing.T) {
	db := testDatabase(t)
	var calls int32
	c := testEsi(t, &calls)

	for i := 0; i < 2; i++ {
		tm, err := universe.GetOrCreateType(testLogger(), context.Background(), db, c)(34)
		if err != nil {
			t.Fatalf("Unable to get or create type: %v", err)
		}
		if tm.Name() != "Tritanium" {
			t.Fatalf("Name should be Tritanium, was %s", tm.Name())
		}
	}
	if calls != 2 {
		t.Fatalf("Expected a type and a group call, got %d calls", calls)
	}

	categoryId, err := universe.GetCategoryIdForType(db)(34)
	if err != nil {
		t.Fatalf("Unable to get category: %v", err)
	}
	if categoryId != 4 {
		t.Fatalf("Category should be 4, was %d", categoryId)
	}
}

func TestGetOrCreateTypeUnknown(t *testing.T) {
	db := testDatabase(t)
	var calls int32
	c := testEsi(t, &calls)

	_, err := universe.GetOrCreateType(testLogger(), context.Background(), db, c)(99999)
	if !errors.Is(err, esi.ErrNotFound) {
		t.Fatalf("Expected not found, got %v", err)
	}
	if _, err = universe.GetTypeById(db)(99999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Unknown type should not be stored, got %v", err)
	}
}

func TestGetOrCreateSystem(t *testing.T) {
	db := testDatabase(t)
	var calls int32
	c := testEsi(t, &calls)

	s, err := universe.GetOrCreateSystem(testLogger(), context.Background(), db, c)(30000142)
	if err != nil {
		t.Fatalf("Unable to get or create system: %v", err)
	}
	if s.Name() != "Jita" {
		t.Fatalf("Name should be Jita, was %s", s.Name())
	}
	if _, err = universe.GetOrCreateSystem(testLogger(), context.Background(), db, c)(30000142); err != nil {
		t.Fatalf("Unable to get system: %v", err)
	}
	if calls != 1 {
		t.Fatalf("Stored system should not be fetched again, got %d calls", calls)
	}
}

func TestSaveUpserts(t *testing.T) {
	db := testDatabase(t)

	if err := universe.SaveBasePrice(db)(universe.NewBasePrice(681, 100)); err != nil {
		t.Fatalf("Unable to save base price: %v", err)
	}
	if err := universe.SaveBasePrice(db)(universe.NewBasePrice(681, 250.5)); err != nil {
		t.Fatalf("Unable to update base price: %v", err)
	}
	bp, err := universe.GetBasePrice(db)(681)
	if err != nil {
		t.Fatalf("Unable to get base price: %v", err)
	}
	if bp.BasePrice() != 250.5 {
		t.Fatalf("Base price should be 250.5, was %f", bp.BasePrice())
	}

	_ = universe.SaveMarketGroup(db)(universe.NewMarketGroup(2, 0, "Blueprints", ""))
	_ = universe.SaveMarketGroup(db)(universe.NewMarketGroup(204, 2, "Ships", ""))
	_ = universe.SaveMarketGroup(db)(universe.NewMarketGroup(209, 2, "Ship Equipment", ""))
	children, err := universe.GetMarketGroupChildren(db)(2)
	if err != nil {
		t.Fatalf("Unable to get children: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(children))
	}
}

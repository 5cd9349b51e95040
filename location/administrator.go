package location

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

func toEntity(m Model) *entity {
	e := &entity{ID: m.id, Name: m.name, UpdatedAt: time.Now()}
	if m.systemId != 0 {
		s := m.systemId
		e.SystemId = &s
	}
	if m.parentId != 0 {
		p := m.parentId
		e.ParentId = &p
	}
	return e
}

// upsert converges concurrent first sightings of the same id on one row.
func upsert(db *gorm.DB, m Model) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "system_id", "parent_id", "updated_at"}),
	}).Create(toEntity(m)).Error
}

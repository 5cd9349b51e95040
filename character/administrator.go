package character

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func upsert(db *gorm.DB, m Model) (Model, error) {
	e := &entity{ID: m.id, Name: m.name, CorporationId: m.corporationId, UserId: m.userId}
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeCharacter(*e)
}

func remove(db *gorm.DB, characterId uint32) error {
	return db.Where(&entity{ID: characterId}).Delete(&entity{}).Error
}

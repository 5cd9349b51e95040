package character

import (
	"aa-wizard-industry/database"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(characterId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: characterId})
	}
}

func getForUser(userId uint32) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("user_id = ?", userId).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getForCorporation(corporationId uint32) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("corporation_id = ?", corporationId).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func makeCharacter(e entity) (Model, error) {
	return NewModel(e.ID, e.Name, e.CorporationId, e.UserId), nil
}

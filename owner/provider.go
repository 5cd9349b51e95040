package owner

import (
	"aa-wizard-industry/database"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: id})
	}
}

func getAll() database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
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
		err := db.Where("kind = ? AND corporation_id = ?", string(KindCorporation), corporationId).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func makeOwner(e entity) (Model, error) {
	return NewModel(e.ID, Kind(e.Kind), e.UserId, e.CharacterId, e.CorporationId, e.AssetsETag), nil
}

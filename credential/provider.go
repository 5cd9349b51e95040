package credential

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

func getForCharacters(characterIds []uint32) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		if len(characterIds) == 0 {
			return model.FixedProvider(results)
		}
		err := db.Where("character_id IN ?", characterIds).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func makeCredential(v Vault) func(e entity) (Model, error) {
	return func(e entity) (Model, error) {
		rt, err := v.Open(e.RefreshToken)
		if err != nil {
			return Model{}, err
		}
		return NewModel(e.ID, e.CharacterId, e.AccessToken, rt, e.Expiry, splitScopes(e.Scopes)), nil
	}
}

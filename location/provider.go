package location

import (
	"aa-wizard-industry/database"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(id int64) database.EntityProvider[entity] {
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

func makeLocation(e entity) (Model, error) {
	m := Model{id: e.ID, name: e.Name, updatedAt: e.UpdatedAt}
	if e.SystemId != nil {
		m.systemId = *e.SystemId
	}
	if e.ParentId != nil {
		m.parentId = *e.ParentId
	}
	return m, nil
}

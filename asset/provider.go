package asset

import (
	"aa-wizard-industry/database"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/universe"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getForScope(scope owner.Scope) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.Id).Order("item_id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

// getNameable returns the singleton assets of the scope whose type falls in one of the categories.
func getNameable(scope owner.Scope, categories []uint32) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Table("assets").
			Select("assets.*").
			Joins("JOIN universe_types ON universe_types.id = assets.type_id").
			Joins("JOIN universe_groups ON universe_groups.id = universe_types.group_id").
			Where("assets.scope_kind = ? AND assets.scope_id = ? AND assets.singleton = ?", string(scope.Kind), scope.Id, true).
			Where("universe_groups.category_id IN ?", categories).
			Order("assets.item_id").
			Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getByFlag(kind owner.Kind, flag string) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("scope_kind = ? AND location_flag = ?", string(kind), flag).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getContainers(kind owner.Kind) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Table("assets").
			Select("assets.*").
			Joins("JOIN universe_types ON universe_types.id = assets.type_id").
			Joins("JOIN universe_groups ON universe_groups.id = universe_types.group_id").
			Where("assets.scope_kind = ? AND assets.singleton = ?", string(kind), true).
			Where("universe_groups.category_id = ? AND universe_groups.id <> ?", universe.CategoryCelestial, universe.GroupBiomass).
			Order("assets.id").
			Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getByItemId(kind owner.Kind, itemId int64) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		var result entity
		err := db.Where("scope_kind = ? AND item_id = ?", string(kind), itemId).Order("id").First(&result).Error
		if err != nil {
			return model.ErrorProvider[entity](err)
		}
		return model.FixedProvider(result)
	}
}

func makeAsset(e entity) (Model, error) {
	m := Model{
		id:            e.ID,
		scope:         owner.Scope{Kind: owner.Kind(e.ScopeKind), Id: e.ScopeId},
		itemId:        e.ItemId,
		typeId:        e.TypeId,
		quantity:      e.Quantity,
		locationId:    e.LocationId,
		locationFlag:  e.LocationFlag,
		singleton:     e.Singleton,
		blueprintCopy: e.BlueprintCopy,
		name:          e.Name,
	}
	if e.LocationRef != nil {
		m.locationRef = *e.LocationRef
	}
	if e.SystemRef != nil {
		m.systemRef = *e.SystemRef
	}
	return m, nil
}

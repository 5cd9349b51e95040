package universe

import (
	"aa-wizard-industry/database"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getTypeById(id uint32) database.EntityProvider[typeEntity] {
	return func(db *gorm.DB) model.Provider[typeEntity] {
		return database.Query[typeEntity](db, &typeEntity{ID: id})
	}
}

func getPublishedTypesInMarketGroup(marketGroupId uint32) database.EntityProvider[[]typeEntity] {
	return func(db *gorm.DB) model.Provider[[]typeEntity] {
		var results []typeEntity
		err := db.Where("market_group_id = ? AND published = ?", marketGroupId, true).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]typeEntity](err)
		}
		return model.FixedProvider(results)
	}
}

func getGroupById(id uint32) database.EntityProvider[groupEntity] {
	return func(db *gorm.DB) model.Provider[groupEntity] {
		return database.Query[groupEntity](db, &groupEntity{ID: id})
	}
}

func getMarketGroupById(id uint32) database.EntityProvider[marketGroupEntity] {
	return func(db *gorm.DB) model.Provider[marketGroupEntity] {
		return database.Query[marketGroupEntity](db, &marketGroupEntity{ID: id})
	}
}

func getMarketGroupChildren(parentId uint32) database.EntityProvider[[]marketGroupEntity] {
	return func(db *gorm.DB) model.Provider[[]marketGroupEntity] {
		var results []marketGroupEntity
		err := db.Where("parent_group_id = ?", parentId).Order("id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]marketGroupEntity](err)
		}
		return model.FixedProvider(results)
	}
}

func getSystemById(id uint32) database.EntityProvider[systemEntity] {
	return func(db *gorm.DB) model.Provider[systemEntity] {
		return database.Query[systemEntity](db, &systemEntity{ID: id})
	}
}

func getActivityProduct(typeId uint32, activityId uint32) database.EntityProvider[activityProductEntity] {
	return func(db *gorm.DB) model.Provider[activityProductEntity] {
		var result activityProductEntity
		err := db.Where("type_id = ? AND activity_id = ?", typeId, activityId).Order("product_type_id").First(&result).Error
		if err != nil {
			return model.ErrorProvider[activityProductEntity](err)
		}
		return model.FixedProvider(result)
	}
}

func getCategoryIdForType(db *gorm.DB, typeId uint32) (uint32, error) {
	var result struct {
		CategoryId uint32
	}
	err := db.Table("universe_types").
		Select("universe_groups.category_id").
		Joins("JOIN universe_groups ON universe_groups.id = universe_types.group_id").
		Where("universe_types.id = ?", typeId).
		Take(&result).Error
	return result.CategoryId, err
}

func getTypeIds(db *gorm.DB) ([]uint32, error) {
	var ids []uint32
	err := db.Model(&typeEntity{}).Pluck("id", &ids).Error
	return ids, err
}

func getBasePrice(typeId uint32) database.EntityProvider[basePriceEntity] {
	return func(db *gorm.DB) model.Provider[basePriceEntity] {
		return database.Query[basePriceEntity](db, &basePriceEntity{TypeId: typeId})
	}
}

func getMetaType(typeId uint32) database.EntityProvider[metaTypeEntity] {
	return func(db *gorm.DB) model.Provider[metaTypeEntity] {
		return database.Query[metaTypeEntity](db, &metaTypeEntity{TypeId: typeId})
	}
}

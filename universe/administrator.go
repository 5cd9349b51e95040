package universe

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func upsert[E any](db *gorm.DB, e *E) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
}

func saveType(db *gorm.DB, m TypeModel) error {
	return upsert(db, &typeEntity{ID: m.id, Name: m.name, GroupId: m.groupId, MarketGroupId: m.marketGroupId, Published: m.published})
}

func saveGroup(db *gorm.DB, m GroupModel) error {
	return upsert(db, &groupEntity{ID: m.id, Name: m.name, CategoryId: m.categoryId})
}

func saveCategory(db *gorm.DB, m CategoryModel) error {
	return upsert(db, &categoryEntity{ID: m.id, Name: m.name})
}

func saveMarketGroup(db *gorm.DB, m MarketGroupModel) error {
	return upsert(db, &marketGroupEntity{ID: m.id, ParentGroupId: m.parentGroupId, Name: m.name, Description: m.description})
}

func saveSystem(db *gorm.DB, m SystemModel) error {
	return upsert(db, &systemEntity{ID: m.id, Name: m.name, ConstellationId: m.constellationId, Security: m.security})
}

func saveActivityProduct(db *gorm.DB, m ActivityProductModel) error {
	return upsert(db, &activityProductEntity{TypeId: m.typeId, ActivityId: m.activityId, ProductTypeId: m.productTypeId, Quantity: m.quantity})
}

func saveBasePrice(db *gorm.DB, m BasePriceModel) error {
	return upsert(db, &basePriceEntity{TypeId: m.typeId, BasePrice: m.basePrice})
}

func saveMetaType(db *gorm.DB, m MetaTypeModel) error {
	return upsert(db, &metaTypeEntity{TypeId: m.typeId, ParentTypeId: m.parentTypeId, MetaGroupId: m.metaGroupId})
}

func makeType(e typeEntity) (TypeModel, error) {
	return NewType(e.ID, e.Name, e.GroupId, e.MarketGroupId, e.Published), nil
}

func makeGroup(e groupEntity) (GroupModel, error) {
	return NewGroup(e.ID, e.Name, e.CategoryId), nil
}

func makeMarketGroup(e marketGroupEntity) (MarketGroupModel, error) {
	return NewMarketGroup(e.ID, e.ParentGroupId, e.Name, e.Description), nil
}

func makeSystem(e systemEntity) (SystemModel, error) {
	return NewSystem(e.ID, e.Name, e.ConstellationId, e.Security), nil
}

func makeActivityProduct(e activityProductEntity) (ActivityProductModel, error) {
	return NewActivityProduct(e.TypeId, e.ActivityId, e.ProductTypeId, e.Quantity), nil
}

func makeBasePrice(e basePriceEntity) (BasePriceModel, error) {
	return NewBasePrice(e.TypeId, e.BasePrice), nil
}

func makeMetaType(e metaTypeEntity) (MetaTypeModel, error) {
	return NewMetaType(e.TypeId, e.ParentTypeId, e.MetaGroupId), nil
}

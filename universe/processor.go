package universe

import (
	"aa-wizard-industry/database"
	"aa-wizard-industry/esi"
	"context"
	"errors"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func byTypeIdProvider(db *gorm.DB) func(typeId uint32) model.Provider[TypeModel] {
	return func(typeId uint32) model.Provider[TypeModel] {
		return database.ModelProvider[TypeModel, typeEntity](db)(getTypeById(typeId), makeType)
	}
}

func GetTypeById(db *gorm.DB) func(typeId uint32) (TypeModel, error) {
	return func(typeId uint32) (TypeModel, error) {
		return byTypeIdProvider(db)(typeId)()
	}
}

func GetTypeIds(db *gorm.DB) (map[uint32]bool, error) {
	ids, err := getTypeIds(db)
	if err != nil {
		return nil, err
	}
	result := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func GetPublishedTypesInMarketGroup(db *gorm.DB) func(marketGroupId uint32) ([]TypeModel, error) {
	return func(marketGroupId uint32) ([]TypeModel, error) {
		return database.ModelSliceProvider[TypeModel, typeEntity](db)(getPublishedTypesInMarketGroup(marketGroupId), makeType)()
	}
}

func GetGroupById(db *gorm.DB) func(groupId uint32) (GroupModel, error) {
	return func(groupId uint32) (GroupModel, error) {
		return database.ModelProvider[GroupModel, groupEntity](db)(getGroupById(groupId), makeGroup)()
	}
}

func GetCategoryIdForType(db *gorm.DB) func(typeId uint32) (uint32, error) {
	return func(typeId uint32) (uint32, error) {
		return getCategoryIdForType(db, typeId)
	}
}

func GetMarketGroupById(db *gorm.DB) func(marketGroupId uint32) (MarketGroupModel, error) {
	return func(marketGroupId uint32) (MarketGroupModel, error) {
		return database.ModelProvider[MarketGroupModel, marketGroupEntity](db)(getMarketGroupById(marketGroupId), makeMarketGroup)()
	}
}

func GetMarketGroupChildren(db *gorm.DB) func(parentId uint32) ([]MarketGroupModel, error) {
	return func(parentId uint32) ([]MarketGroupModel, error) {
		return database.ModelSliceProvider[MarketGroupModel, marketGroupEntity](db)(getMarketGroupChildren(parentId), makeMarketGroup)()
	}
}

func GetSystemById(db *gorm.DB) func(systemId uint32) (SystemModel, error) {
	return func(systemId uint32) (SystemModel, error) {
		return database.ModelProvider[SystemModel, systemEntity](db)(getSystemById(systemId), makeSystem)()
	}
}

// GetProduct returns the first product of the blueprint type for the activity.
func GetProduct(db *gorm.DB) func(typeId uint32, activityId uint32) (ActivityProductModel, error) {
	return func(typeId uint32, activityId uint32) (ActivityProductModel, error) {
		return database.ModelProvider[ActivityProductModel, activityProductEntity](db)(getActivityProduct(typeId, activityId), makeActivityProduct)()
	}
}

func GetBasePrice(db *gorm.DB) func(typeId uint32) (BasePriceModel, error) {
	return func(typeId uint32) (BasePriceModel, error) {
		return database.ModelProvider[BasePriceModel, basePriceEntity](db)(getBasePrice(typeId), makeBasePrice)()
	}
}

func GetMetaType(db *gorm.DB) func(typeId uint32) (MetaTypeModel, error) {
	return func(typeId uint32) (MetaTypeModel, error) {
		return database.ModelProvider[MetaTypeModel, metaTypeEntity](db)(getMetaType(typeId), makeMetaType)()
	}
}

func SaveType(db *gorm.DB) model.Operator[TypeModel] {
	return func(m TypeModel) error {
		return saveType(db, m)
	}
}

func SaveGroup(db *gorm.DB) model.Operator[GroupModel] {
	return func(m GroupModel) error {
		return saveGroup(db, m)
	}
}

func SaveCategory(db *gorm.DB) model.Operator[CategoryModel] {
	return func(m CategoryModel) error {
		return saveCategory(db, m)
	}
}

func SaveMarketGroup(db *gorm.DB) model.Operator[MarketGroupModel] {
	return func(m MarketGroupModel) error {
		return saveMarketGroup(db, m)
	}
}

func SaveSystem(db *gorm.DB) model.Operator[SystemModel] {
	return func(m SystemModel) error {
		return saveSystem(db, m)
	}
}

func SaveActivityProduct(db *gorm.DB) model.Operator[ActivityProductModel] {
	return func(m ActivityProductModel) error {
		return saveActivityProduct(db, m)
	}
}

func SaveBasePrice(db *gorm.DB) model.Operator[BasePriceModel] {
	return func(m BasePriceModel) error {
		return saveBasePrice(db, m)
	}
}

func SaveMetaType(db *gorm.DB) model.Operator[MetaTypeModel] {
	return func(m MetaTypeModel) error {
		return saveMetaType(db, m)
	}
}

// GetOrCreateType returns the stored type, fetching it (and its group when missing) from ESI on first sight.
func GetOrCreateType(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(typeId uint32) (TypeModel, error) {
	return func(typeId uint32) (TypeModel, error) {
		t, err := GetTypeById(db)(typeId)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return TypeModel{}, err
		}

		rm, err := c.Type(ctx, typeId)
		if err != nil {
			l.WithError(err).Warnf("Unable to retrieve type [%d].", typeId)
			return TypeModel{}, err
		}
		if _, err = GetGroupById(db)(rm.GroupId); errors.Is(err, gorm.ErrRecordNotFound) {
			gm, err := c.Group(ctx, rm.GroupId)
			if err != nil {
				l.WithError(err).Warnf("Unable to retrieve group [%d] of type [%d].", rm.GroupId, typeId)
			} else if err = saveGroup(db, NewGroup(gm.GroupId, gm.Name, gm.CategoryId)); err != nil {
				return TypeModel{}, err
			}
		}

		t = NewType(rm.TypeId, rm.Name, rm.GroupId, rm.MarketGroupId, rm.Published)
		err = saveType(db, t)
		if err != nil {
			return TypeModel{}, err
		}
		l.Debugf("Created type [%d] [%s].", t.Id(), t.Name())
		return t, nil
	}
}

// GetOrCreateSystem returns the stored solar system, fetching it from ESI on first sight.
func GetOrCreateSystem(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, c *esi.Client) func(systemId uint32) (SystemModel, error) {
	return func(systemId uint32) (SystemModel, error) {
		s, err := GetSystemById(db)(systemId)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SystemModel{}, err
		}

		rm, err := c.System(ctx, systemId)
		if err != nil {
			l.WithError(err).Warnf("Unable to retrieve solar system [%d].", systemId)
			return SystemModel{}, err
		}
		s = NewSystem(rm.SystemId, rm.Name, rm.ConstellationId, rm.SecurityStatus)
		err = saveSystem(db, s)
		if err != nil {
			return SystemModel{}, err
		}
		l.Debugf("Created solar system [%d] [%s].", s.Id(), s.Name())
		return s, nil
	}
}

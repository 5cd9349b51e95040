package universe

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&typeEntity{}, &groupEntity{}, &categoryEntity{}, &marketGroupEntity{}, &systemEntity{}, &activityProductEntity{}, &basePriceEntity{}, &metaTypeEntity{})
}

type typeEntity struct {
	ID            uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	Name          string `gorm:"not null"`
	GroupId       uint32 `gorm:"not null;index"`
	MarketGroupId uint32 `gorm:"not null;index"`
	Published     bool   `gorm:"not null"`
}

func (e typeEntity) TableName() string {
	return "universe_types"
}

type groupEntity struct {
	ID         uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	Name       string `gorm:"not null"`
	CategoryId uint32 `gorm:"not null;index"`
}

func (e groupEntity) TableName() string {
	return "universe_groups"
}

type categoryEntity struct {
	ID   uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	Name string `gorm:"not null"`
}

func (e categoryEntity) TableName() string {
	return "universe_categories"
}

type marketGroupEntity struct {
	ID            uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	ParentGroupId uint32 `gorm:"not null;index"`
	Name          string `gorm:"not null"`
	Description   string
}

func (e marketGroupEntity) TableName() string {
	return "universe_market_groups"
}

type systemEntity struct {
	ID              uint32  `gorm:"primaryKey;autoIncrement:false;not null"`
	Name            string  `gorm:"not null"`
	ConstellationId uint32  `gorm:"not null"`
	Security        float64 `gorm:"not null"`
}

func (e systemEntity) TableName() string {
	return "universe_systems"
}

type activityProductEntity struct {
	TypeId        uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	ActivityId    uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	ProductTypeId uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	Quantity      uint32 `gorm:"not null"`
}

func (e activityProductEntity) TableName() string {
	return "universe_activity_products"
}

type basePriceEntity struct {
	TypeId    uint32  `gorm:"primaryKey;autoIncrement:false;not null"`
	BasePrice float64 `gorm:"not null"`
}

func (e basePriceEntity) TableName() string {
	return "base_prices"
}

type metaTypeEntity struct {
	TypeId       uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	ParentTypeId uint32 `gorm:"not null"`
	MetaGroupId  uint32 `gorm:"not null"`
}

func (e metaTypeEntity) TableName() string {
	return "meta_types"
}

package asset

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement;not null"`
	ScopeKind     string  `gorm:"not null;index:idx_asset_scope"`
	ScopeId       uint32  `gorm:"not null;index:idx_asset_scope"`
	ItemId        int64   `gorm:"not null;index"`
	TypeId        uint32  `gorm:"not null"`
	Quantity      int32   `gorm:"not null"`
	LocationId    int64   `gorm:"not null"`
	LocationFlag  string  `gorm:"not null"`
	Singleton     bool    `gorm:"not null"`
	BlueprintCopy bool    `gorm:"not null"`
	Name          string  `gorm:"not null;default:''"`
	LocationRef   *int64  `gorm:"index"`
	SystemRef     *uint32
}

func (e entity) TableName() string {
	return "assets"
}

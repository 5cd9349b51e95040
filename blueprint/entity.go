package blueprint

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement;not null"`
	ScopeKind          string `gorm:"not null;index:idx_blueprint_scope"`
	ScopeId            uint32 `gorm:"not null;index:idx_blueprint_scope"`
	ItemId             int64  `gorm:"not null"`
	TypeId             uint32 `gorm:"not null;index"`
	LocationId         int64  `gorm:"not null"`
	LocationFlag       string `gorm:"not null"`
	Quantity           int32  `gorm:"not null"`
	Runs               int32  `gorm:"not null"`
	MaterialEfficiency int32  `gorm:"not null"`
	TimeEfficiency     int32  `gorm:"not null"`
}

func (e entity) TableName() string {
	return "blueprints"
}

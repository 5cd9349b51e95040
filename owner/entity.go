package owner

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID            uint32 `gorm:"primaryKey;autoIncrement;not null"`
	Kind          string `gorm:"not null;uniqueIndex:idx_owner_binding"`
	UserId        uint32 `gorm:"not null;uniqueIndex:idx_owner_binding"`
	CharacterId   uint32 `gorm:"not null;uniqueIndex:idx_owner_binding"`
	CorporationId uint32 `gorm:"not null;uniqueIndex:idx_owner_binding"`
	AssetsETag    string `gorm:"column:assets_etag"`
}

func (e entity) TableName() string {
	return "owners"
}

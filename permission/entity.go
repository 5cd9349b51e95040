package permission

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID     uint32 `gorm:"primaryKey;autoIncrement;not null"`
	UserId uint32 `gorm:"not null;uniqueIndex:idx_permission_user_name"`
	Name   string `gorm:"not null;uniqueIndex:idx_permission_user_name"`
}

func (e entity) TableName() string {
	return "permissions"
}

package character

import "gorm.io/gorm"

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID            uint32 `gorm:"primaryKey;autoIncrement:false;not null"`
	Name          string `gorm:"not null"`
	CorporationId uint32 `gorm:"not null;index"`
	UserId        uint32 `gorm:"not null;index"`
}

func (e entity) TableName() string {
	return "characters"
}

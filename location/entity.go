package location

import (
	"gorm.io/gorm"
	"time"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false;not null"`
	Name      string  `gorm:"not null"`
	SystemId  *uint32 `gorm:"index"`
	ParentId  *int64
	UpdatedAt time.Time
}

func (e entity) TableName() string {
	return "locations"
}

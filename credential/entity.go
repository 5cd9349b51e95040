package credential

import (
	"gorm.io/gorm"
	"time"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID           uint32    `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId  uint32    `gorm:"not null;index"`
	AccessToken  string    `gorm:"not null"`
	RefreshToken string    `gorm:"not null"`
	Expiry       time.Time `gorm:"not null"`
	Scopes       string    `gorm:"not null"`
}

func (e entity) TableName() string {
	return "credentials"
}

package job

import (
	"gorm.io/gorm"
	"time"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID                   uint64     `gorm:"primaryKey;autoIncrement;not null"`
	ScopeKind            string     `gorm:"not null;uniqueIndex:idx_job_scope"`
	ScopeId              uint32     `gorm:"not null;uniqueIndex:idx_job_scope"`
	JobId                uint32     `gorm:"not null;uniqueIndex:idx_job_scope"`
	ActivityId           uint32     `gorm:"not null"`
	BlueprintId          int64      `gorm:"not null"`
	BlueprintTypeId      uint32     `gorm:"not null"`
	ProductTypeId        uint32     `gorm:"not null"`
	InstallerId          uint32     `gorm:"not null"`
	Status               string     `gorm:"not null"`
	Runs                 int32      `gorm:"not null"`
	LicensedRuns         int32      `gorm:"not null"`
	Probability          float64    `gorm:"not null"`
	Cost                 float64    `gorm:"not null"`
	Duration             int32      `gorm:"not null"`
	StartDate            time.Time  `gorm:"not null"`
	EndDate              time.Time  `gorm:"not null"`
	PauseDate            *time.Time
	CompletedDate        *time.Time
	CompletedCharacterId uint32     `gorm:"not null;default:0"`
	SuccessfulRuns       int32      `gorm:"not null;default:0"`
	BlueprintLocationId  int64      `gorm:"not null"`
	FacilityId           int64      `gorm:"not null"`
	LocationId           int64      `gorm:"not null"`
	OutputLocationId     int64      `gorm:"not null"`
	BlueprintLocationRef *int64
	FacilityRef          *int64
	LocationRef          *int64
	OutputLocationRef    *int64
}

func (e entity) TableName() string {
	return "industry_jobs"
}

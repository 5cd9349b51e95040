package task

import (
	"aa-wizard-industry/asset"
	"aa-wizard-industry/location"
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"time"
)

const ContainerUpkeep = "container_upkeep"

type containerUpkeep struct {
	db       *gorm.DB
	interval time.Duration
}

// NewContainerUpkeep keeps the office and container locations in step with the stored assets.
func NewContainerUpkeep(db *gorm.DB, interval time.Duration) Task {
	return containerUpkeep{db: db, interval: interval}
}

func (t containerUpkeep) Name() string {
	return ContainerUpkeep
}

func (t containerUpkeep) Run(l logrus.FieldLogger, _ context.Context) error {
	src := asset.ContainerSource(l, t.db)
	for _, step := range []func(l logrus.FieldLogger, db *gorm.DB, src location.AssetSource) (int, error){
		location.CreateOfficeLocations,
		location.UpdateOfficeLocations,
		location.CreateContainerLocations,
		location.UpdateContainerLocations,
	} {
		if _, err := step(l, t.db, src); err != nil {
			return err
		}
	}
	return nil
}

func (t containerUpkeep) SleepTime() time.Duration {
	return t.interval
}

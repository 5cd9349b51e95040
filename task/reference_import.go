package task

import (
	"aa-wizard-industry/reference"
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"time"
)

const ReferenceImport = "reference_import"

type referenceImport struct {
	db       *gorm.DB
	src      reference.Source
	interval time.Duration
}

// NewReferenceImport refreshes the universe, base price and meta type tables from the SDE.
func NewReferenceImport(db *gorm.DB, src reference.Source, interval time.Duration) Task {
	return referenceImport{db: db, src: src, interval: interval}
}

func (t referenceImport) Name() string {
	return ReferenceImport
}

func (t referenceImport) Run(l logrus.FieldLogger, ctx context.Context) error {
	_, err := reference.ImportAll(l, ctx, t.db, t.src)
	return err
}

func (t referenceImport) SleepTime() time.Duration {
	return t.interval
}

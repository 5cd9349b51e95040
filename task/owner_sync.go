package task

import (
	"aa-wizard-industry/synchronizer"
	"context"
	"github.com/sirupsen/logrus"
	"time"
)

const OwnerSync = "owner_sync"

type ownerSync struct {
	d           synchronizer.Dependencies
	interval    time.Duration
	concurrency int
}

// NewOwnerSync syncs assets, blueprints and jobs of every owner.
func NewOwnerSync(d synchronizer.Dependencies, interval time.Duration, concurrency int) Task {
	return ownerSync{d: d, interval: interval, concurrency: concurrency}
}

func (t ownerSync) Name() string {
	return OwnerSync
}

func (t ownerSync) Run(l logrus.FieldLogger, ctx context.Context) error {
	return synchronizer.SyncAll(l, ctx, t.d, t.concurrency)(synchronizer.AllTargets...)
}

func (t ownerSync) SleepTime() time.Duration {
	return t.interval
}

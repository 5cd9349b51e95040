package task

import (
	"context"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Task is periodic work. Run is called once at registration and then every SleepTime until the context ends.
type Task interface {
	Name() string
	Run(l logrus.FieldLogger, ctx context.Context) error
	SleepTime() time.Duration
}

func Register(l logrus.FieldLogger, ctx context.Context, wg *sync.WaitGroup) func(t Task) {
	return func(t Task) {
		fl := l.WithFields(logrus.Fields{"originator": t.Name(), "type": "task"})
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(t.SleepTime())
			defer ticker.Stop()

			fl.Infof("Scheduled every [%s].", t.SleepTime())
			for {
				run(fl, ctx, t)
				select {
				case <-ctx.Done():
					fl.Infof("Stopped.")
					return
				case <-ticker.C:
				}
			}
		}()
	}
}

func run(l logrus.FieldLogger, ctx context.Context, t Task) {
	if ctx.Err() != nil {
		return
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "task."+t.Name())
	defer span.Finish()

	start := time.Now()
	if err := t.Run(l, ctx); err != nil {
		l.WithError(err).Errorf("Run failed after [%s].", time.Since(start))
		return
	}
	l.Debugf("Run completed in [%s].", time.Since(start))
}

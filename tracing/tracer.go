package tracing

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
	"io"
)

func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		cfg.ServiceName = serviceName
		if cfg.Sampler.Type == "" {
			cfg.Sampler.Type = jaeger.SamplerTypeConst
			cfg.Sampler.Param = 1
		}

		tracer, closer, err := cfg.NewTracer(config.Logger(logAdapter{l: l}))
		if err != nil {
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

func Teardown(l logrus.FieldLogger) func(tc io.Closer) func() {
	return func(tc io.Closer) func() {
		return func() {
			err := tc.Close()
			if err != nil {
				l.WithError(err).Errorf("Unable to close tracer.")
			}
		}
	}
}

type logAdapter struct {
	l logrus.FieldLogger
}

func (a logAdapter) Error(msg string) {
	a.l.Error(msg)
}

func (a logAdapter) Infof(msg string, args ...interface{}) {
	a.l.Debugf(msg, args...)
}

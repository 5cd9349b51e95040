package consumer

import (
	"aa-wizard-industry/kafka"
	"context"
	"encoding/json"
	"errors"
	"github.com/opentracing/opentracing-go"
	kafka2 "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

type Config struct {
	name    string
	topic   string
	groupId string
	maxWait time.Duration
	backoff time.Duration
}

func (c Config) Name() string {
	return c.name
}

func (c Config) Topic() string {
	return c.topic
}

func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) Config {
	return func(name string) func(token string) func(groupId string) Config {
		return func(token string) func(groupId string) Config {
			return func(groupId string) Config {
				return Config{name: name, topic: kafka.LookupTopic(l)(token), groupId: groupId, maxWait: 500 * time.Millisecond, backoff: time.Second}
			}
		}
	}
}

// Handler processes one decoded message. Errors are logged and the offset is still committed.
type Handler[E any] func(l logrus.FieldLogger, ctx context.Context, event E) error

type rawHandler func(l logrus.FieldLogger, ctx context.Context, msg kafka2.Message) error

func adapt[E any](h Handler[E]) rawHandler {
	return func(l logrus.FieldLogger, ctx context.Context, msg kafka2.Message) error {
		var event E
		err := json.Unmarshal(msg.Value, &event)
		if err != nil {
			return err
		}
		return h(l, ctx, event)
	}
}

// Start runs a consumer group reader for the config until ctx is cancelled.
func Start[E any](l logrus.FieldLogger, ctx context.Context, wg *sync.WaitGroup) func(c Config, h Handler[E]) {
	return func(c Config, h Handler[E]) {
		handle := adapt(h)
		r := kafka2.NewReader(kafka2.ReaderConfig{
			Brokers: kafka.Brokers(),
			GroupID: c.groupId,
			Topic:   c.topic,
			MaxWait: c.maxWait,
		})
		fl := l.WithFields(logrus.Fields{"originator": c.name, "type": "kafka_consumer"})

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if err := r.Close(); err != nil {
					fl.WithError(err).Errorf("Unable to close reader.")
				}
			}()

			consume(fl, ctx, r, c, handle)
		}()
	}
}

// reader is the part of kafka-go's Reader the consume loop uses.
type reader interface {
	FetchMessage(ctx context.Context) (kafka2.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka2.Message) error
}

func consume(l logrus.FieldLogger, ctx context.Context, r reader, c Config, handle rawHandler) {
	l.Infof("Start consuming topic [%s].", c.topic)
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.Infof("Stopped consuming topic [%s].", c.topic)
				return
			}
			l.WithError(err).Errorf("Unable to fetch message, retrying in [%s].", c.backoff)
			select {
			case <-ctx.Done():
				l.Infof("Stopped consuming topic [%s].", c.topic)
				return
			case <-time.After(c.backoff):
			}
			continue
		}

		span := opentracing.StartSpan(c.name)
		sctx := opentracing.ContextWithSpan(ctx, span)
		if err = handle(l, sctx, msg); err != nil {
			l.WithError(err).Errorf("Unable to handle message at offset [%d].", msg.Offset)
		}
		span.Finish()

		if err = r.CommitMessages(ctx, msg); err != nil {
			l.WithError(err).Errorf("Unable to commit offset [%d].", msg.Offset)
		}
	}
}

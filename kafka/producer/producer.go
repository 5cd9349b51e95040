package producer

import (
	"aa-wizard-industry/kafka"
	"context"
	"encoding/json"
	"github.com/Chronicle20/atlas-model/model"
	kafka2 "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"strconv"
	"sync"
	"time"
)

type MessageProducer func(provider model.Provider[[]kafka2.Message]) error

// Provider yields a MessageProducer for the topic named by the environment variable token.
type Provider func(token string) MessageProducer

func CreateKey(key int) []byte {
	return []byte(strconv.Itoa(key))
}

func SingleMessageProvider(key []byte, value interface{}) model.Provider[[]kafka2.Message] {
	return func() ([]kafka2.Message, error) {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return []kafka2.Message{{Key: key, Value: data}}, nil
	}
}

type writerRegistry struct {
	mutex   sync.Mutex
	writers map[string]*kafka2.Writer
}

var registry = &writerRegistry{writers: make(map[string]*kafka2.Writer)}

func (r *writerRegistry) get(topic string) *kafka2.Writer {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if w, ok := r.writers[topic]; ok {
		return w
	}
	w := &kafka2.Writer{
		Addr:         kafka2.TCP(kafka.Brokers()...),
		Topic:        topic,
		Balancer:     &kafka2.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	}
	r.writers[topic] = w
	return w
}

// Close flushes and closes every writer opened by ProviderImpl.
func Close(l logrus.FieldLogger) func() {
	return func() {
		registry.mutex.Lock()
		defer registry.mutex.Unlock()
		for t, w := range registry.writers {
			if err := w.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close writer for topic [%s].", t)
			}
		}
		registry.writers = make(map[string]*kafka2.Writer)
	}
}

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		return func(token string) MessageProducer {
			topic := kafka.LookupTopic(l)(token)
			return func(provider model.Provider[[]kafka2.Message]) error {
				ms, err := provider()
				if err != nil {
					return err
				}
				err = registry.get(topic).WriteMessages(ctx, ms...)
				if err != nil {
					l.WithError(err).Errorf("Unable to emit [%d] messages to topic [%s].", len(ms), topic)
					return err
				}
				l.Debugf("Emitted [%d] messages to topic [%s].", len(ms), topic)
				return nil
			}
		}
	}
}

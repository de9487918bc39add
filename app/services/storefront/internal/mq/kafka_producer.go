package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher delivers order events. Failures are reported to the caller, who
// treats them as non fatal.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }

type KafkaPublisher struct {
	w *kafka.Writer
}

// NewKafkaPublisher returns a publisher whose topic is chosen per message.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{Topic: topic, Key: []byte(key), Value: body})
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

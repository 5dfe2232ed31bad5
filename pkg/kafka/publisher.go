package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/IBM/sarama"
)

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewPublisher sends events keyed by student so one student's events stay ordered.
func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) Publisher {
	return &publisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (p *publisher) Publish(ctx context.Context, events ...Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(ev.StudentID, 10)),
			Value: sarama.ByteEncoder(data),
		})
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.cb.Call(func() error {
		for _, msg := range msgs {
			if _, _, err := p.producer.SendMessage(msg); err != nil {
				return err
			}
		}
		return nil
	})
}

type nopPublisher struct{}

// NopPublisher drops events; used when no brokers are configured.
func NopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, ...Event) error { return nil }

package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	recordRetries     = 3
	recordBackoffBase = 10 * time.Millisecond
)

type recordNotification func(ctx context.Context, ev kafka.Event) error

// Consumer turns library events into stored notifications.
type Consumer struct {
	record recordNotification
	log    *zap.Logger
}

func NewConsumer(record recordNotification, log *zap.Logger) *Consumer {
	return &Consumer{
		record: record,
		log:    log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only once it is stored or known to be
// undecodable. A message that still fails after retries ends the claim
// unmarked, so nothing past it is committed and the group resumes from it.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev kafka.Event
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("decode event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordWithRetry(session.Context(), ev); err != nil {
				consumer.log.Error("record notification",
					zap.String("event", ev.ID), zap.Int64("offset", message.Offset), zap.Error(err))
				return errors.Wrapf(err, "record event %s", ev.ID)
			}

			consumer.log.Debug("message claimed",
				zap.String("type", string(ev.Type)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) recordWithRetry(ctx context.Context, ev kafka.Event) error {
	b := retry.WithMaxRetries(recordRetries, retry.NewExponential(recordBackoffBase))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		return retry.RetryableError(consumer.record(ctx, ev))
	})
}

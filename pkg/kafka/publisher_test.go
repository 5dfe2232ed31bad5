package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer func() { require.NoError(t, producer.Close()) }()

	ev := kafka.NewEvent(kafka.EventLoanIssued, 7, time.Now())
	ev.LoanID = 42

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.Event
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.ID != ev.ID || got.LoanID != 42 || got.Type != kafka.EventLoanIssued {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := kafka.NewPublisher(producer, kafka.EventsTopic, circuit_breaker.New(5, time.Minute, 0.5, 1))
	require.NoError(t, p.Publish(context.Background(), ev))
}

func TestPublisher_Publish_BreakerOpens(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cb := circuit_breaker.New(1, time.Minute, 1, 1)
	p := kafka.NewPublisher(producer, kafka.EventsTopic, cb)

	ev := kafka.NewEvent(kafka.EventFineCreated, 1, time.Now())
	require.ErrorIs(t, p.Publish(context.Background(), ev), sarama.ErrOutOfBrokers)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, p.Publish(context.Background(), ev), circuit_breaker.ErrOpenCB)
}

func TestNopPublisher(t *testing.T) {
	require.NoError(t, kafka.NopPublisher().Publish(context.Background(), kafka.Event{}))
}

package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher kafka.Publisher
	policy    domain.Policy
	now       func() time.Time
}

func NewService(repo repository.Repository, publisher kafka.Publisher, policy domain.Policy, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = kafka.NopPublisher()
	}
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		policy:    policy,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Policy() domain.Policy {
	return s.policy
}

// publish is called after commit. Delivery is best effort: a failure is
// logged and never undoes the committed change.
func (s *Service) publish(ctx context.Context, events ...kafka.Event) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.log.Warn("publish events", zap.Int("count", len(events)), zap.String("type", string(events[0].Type)), zap.Error(err))
	}
}

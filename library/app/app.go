package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-circulation/library/config"
	"github.com/Astemirdum/library-circulation/library/internal/handler"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/library/internal/server"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/library/migrations"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	policy, err := cfg.Policy.Domain()
	if err != nil {
		log.Fatal("policy", zap.Error(err))
	}

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	publisher := kafka.NopPublisher()
	var consumer sarama.ConsumerGroup
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		publisher = kafka.NewPublisher(producer, kafka.EventsTopic, circuit_breaker.New(100, 10*time.Second, 0.2, 2))

		if consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup); err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
	} else {
		log.Warn("kafka disabled, events are dropped")
	}

	svc := service.NewService(repo, publisher, policy, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(cfg.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)
	if consumer != nil {
		g.Go(func() error {
			return kafka.Consume(gctx, consumer, handler.NewConsumer(svc.RecordNotification, log), kafka.EventsTopic)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				log.Error("consumer close", zap.Error(err))
			}
		}
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("app stopped", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

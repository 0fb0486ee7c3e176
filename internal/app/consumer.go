package app

import (
	"context"
	"errors"

	"go-reestr/internal/company"
	"go-reestr/internal/config"
	"go-reestr/internal/events"
	"go-reestr/internal/messaging/kafka/consumer"
	"go-reestr/internal/registryapi"
	"go-reestr/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const detailsCacheGroup = "go-reestr-details-cache"

var (
	errConsumerNeedsKafka = errors.New("KAFKA_BROKER is required")
	errConsumerNeedsRedis = errors.New("REDIS_ADDR is required")
	errConsumerDemoMode   = errors.New("consumer does not run in demo mode")
)

// RunConsumer warms the extended-details cache from company_added events
// until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	switch {
	case cfg.Demo.Enabled:
		return errConsumerDemoMode
	case cfg.Kafka.Broker == "":
		return errConsumerNeedsKafka
	case cfg.Redis.Addr == "":
		return errConsumerNeedsRedis
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	companyService := company.NewService(
		company.NewAPIRepository(registryapi.NewClient(cfg.Registry.BaseURL, cfg.Registry.Timeout)),
		company.ServiceConfig{
			DefaultLimit: cfg.Registry.DefaultLimit,
			CacheTTL:     cfg.Redis.CacheTTL,
		},
		rdb,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.Kafka.Broker},
		Topic:       events.CompanyAddedTopic,
		GroupID:     detailsCacheGroup,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeCompanyAdded(ctx, reader, companyService, logger)
	logger.Info("consumer shut down")
	return nil
}

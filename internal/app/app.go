package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"go-reestr/internal/company"
	"go-reestr/internal/config"
	"go-reestr/internal/demostore"
	"go-reestr/internal/health"
	"go-reestr/internal/middleware"
	"go-reestr/internal/registryapi"
	"go-reestr/internal/shared/connection"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App owns the connections opened by BuildApp
type App struct {
	closers []func() error
}

func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of acquisition
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func BuildApp(router *gin.Engine, cfg *config.Config) (*App, error) {
	logger := zap.L().Named("app")
	a := &App{}

	// 1. Infrastructure
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
		if err != nil {
			return nil, err
		}
		rdb = client
		a.onClose(rdb.Close)
	} else {
		logger.Info("REDIS_ADDR not set, details cache and idempotency disabled")
	}

	var publisher company.EventPublisher
	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.onClose(writer.Close)
		publisher = company.NewKafkaEventPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, company events disabled")
	}

	repo, checks, err := a.buildRepository(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	// 2. Presentation
	tmpl, err := web.Templates()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := web.StaticFS()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	router.StaticFS("/static", http.FS(static))

	router.Use(
		middleware.RequestID(),
		middleware.SessionUser(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.DemoMode(cfg.Demo.Enabled),
	)

	// 3. Modules & routes
	registerModules(router, moduleDeps{
		cfg:       cfg,
		repo:      repo,
		publisher: publisher,
		rdb:       rdb,
		checks:    checks,
	})

	return a, nil
}

// buildRepository picks the system of record: the registry API, or the local
// bbolt file in demo mode.
func (a *App) buildRepository(cfg *config.Config, logger *zap.Logger) (company.Repository, map[string]health.Check, error) {
	checks := map[string]health.Check{}

	if cfg.Demo.Enabled {
		store, err := demostore.New(context.Background(), cfg.Demo.DBPath)
		if err != nil {
			return nil, nil, err
		}
		a.onClose(store.Close)

		seeded, err := store.Seed(context.Background(), demostore.SampleCompanies())
		if err != nil {
			return nil, nil, err
		}
		logger.Warn("demo mode enabled, writes go to the local store",
			zap.String("path", cfg.Demo.DBPath),
			zap.Bool("seeded", seeded),
		)
		return store, checks, nil
	}

	client := registryapi.NewClient(cfg.Registry.BaseURL, cfg.Registry.Timeout)
	if addr, err := dialAddress(cfg.Registry.BaseURL); err == nil {
		checks["registry"] = func(ctx context.Context) error {
			return connection.PingTCP(ctx, addr)
		}
	}
	logger.Info("using registry api", zap.String("base_url", client.BaseURL()))

	return company.NewAPIRepository(client), checks, nil
}

func dialAddress(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

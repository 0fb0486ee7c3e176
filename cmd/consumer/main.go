package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-reestr/internal/app"
	"go-reestr/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	newLogger := zap.NewDevelopment
	if cfg.IsProduction() {
		newLogger = zap.NewProduction
	}
	logger := zap.Must(newLogger())
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger.Named("consumer")); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}

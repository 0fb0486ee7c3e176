package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-reestr/internal/company"
	companyerrors "go-reestr/internal/company/errors"
	"go-reestr/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const DefaultRetryDelay = 5 * time.Second

// MessageReader is satisfied by *kafkago.Reader
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type options struct {
	retryDelay time.Duration
}

type Option func(*options)

// WithRetryDelay sets the pause between lookups of a message whose
// registry call failed on transport.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) { o.retryDelay = d }
}

// ConsumeCompanyAdded warms the extended-details cache for every newly added
// company. A lookup that fails on transport is retried in place, so the
// offset never moves past it. Everything else is committed once handled.
func ConsumeCompanyAdded(
	ctx context.Context,
	reader MessageReader,
	companyService company.Service,
	logger *zap.Logger,
	opts ...Option,
) {
	o := options{retryDelay: DefaultRetryDelay}
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Named("kafka.consumer.company_added")
	log.Info("company added consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("company added consumer stopped")
				return
			}
			log.Error("fetch company added message failed", zap.Error(err))
			continue
		}

		var event events.CompanyAddedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode company_added event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := warmDetails(ctx, companyService, event, o.retryDelay, log); err != nil {
			log.Info("company added consumer stopped, message left uncommitted",
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit company added message failed", zap.Error(err))
			continue
		}

		log.Debug("company details cache warmed",
			zap.Int64("company_id", event.CompanyID),
			zap.String("inn", event.INN),
		)
	}
}

// warmDetails returns an error only when ctx ends before the lookup settles.
func warmDetails(
	ctx context.Context,
	companyService company.Service,
	event events.CompanyAddedEvent,
	retryDelay time.Duration,
	log *zap.Logger,
) error {
	for attempt := 1; ; attempt++ {
		_, err := companyService.GetDetailsByINN(ctx, event.INN)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, companyerrors.ErrUpstreamUnavailable):
			log.Info("no extended record for added company yet",
				zap.Int64("company_id", event.CompanyID),
				zap.String("inn", event.INN),
				zap.Error(err),
			)
			return nil
		}

		log.Warn("registry unavailable, retrying company added event",
			zap.Int64("company_id", event.CompanyID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		timer := time.NewTimer(retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

package dashboard

import (
	"context"

	"go-reestr/internal/company"

	"go.uber.org/zap"
)

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	companies company.Service
	logger    *zap.Logger
}

// NewService summarizes the first page of companies the default list returns
func NewService(companies company.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{companies: companies, logger: l}
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	result, err := s.companies.List(ctx, company.ListQuery{})
	if err != nil {
		return Summary{}, err
	}

	summary := Summarize(result.Companies)
	s.logger.Debug("dashboard summary built",
		zap.Int("total", summary.Total),
		zap.Int("in_reestr", summary.InReestr),
	)
	return summary, nil
}

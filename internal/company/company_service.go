package company

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	companyerrors "go-reestr/internal/company/errors"
	"go-reestr/internal/events"
	"go-reestr/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CompanyINNKeyPrefix = "companies:inn:"

const DefaultCacheTTL = 10 * time.Minute

func GetCompanyINNKey(inn string) string {
	return CompanyINNKeyPrefix + inn
}

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, q ListQuery) (ListResult, error)
	// GetDetails loads the basic record by id, then the extended record by
	// the tax id found on it.
	GetDetails(ctx context.Context, id int64) (Company, error)
	GetDetailsByINN(ctx context.Context, inn string) (Company, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
}

type ServiceConfig struct {
	DefaultLimit int
	CacheTTL     time.Duration
}

type service struct {
	repo      Repository
	publisher EventPublisher
	rdb       *redis.Client
	sf        *singleflight.Group
	cfg       ServiceConfig
	logger    *zap.Logger
}

func NewService(repo Repository, cfg ServiceConfig, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, nil, cfg, rdb, logger...)
}

func NewServiceWithPublisher(
	repo Repository,
	publisher EventPublisher,
	cfg ServiceConfig,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultListLimit
	}
	if cfg.DefaultLimit > MaxListLimit {
		cfg.DefaultLimit = MaxListLimit
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		cfg:       cfg,
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	skip, limit := s.normalizePage(q)

	companies, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return ListResult{}, err
	}
	if companies == nil {
		companies = []Company{}
	}

	return ListResult{Companies: companies, Skip: skip, Limit: limit}, nil
}

func (s *service) normalizePage(q ListQuery) (int, int) {
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	limit := q.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return skip, limit
}

func (s *service) GetDetails(ctx context.Context, id int64) (Company, error) {
	if id <= 0 {
		return Company{}, companyerrors.ErrInvalidCompanyID
	}

	basic, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Company{}, err
	}

	inn := strings.TrimSpace(basic.INN)
	if inn == "" {
		return Company{}, companyerrors.ErrCompanyINNMissing
	}

	details, err := s.lookupByINN(ctx, inn)
	if err != nil {
		return Company{}, err
	}

	return mergeBasic(details, *basic), nil
}

func (s *service) GetDetailsByINN(ctx context.Context, inn string) (Company, error) {
	inn = strings.TrimSpace(inn)
	if inn == "" {
		return Company{}, companyerrors.ErrINNRequired
	}

	return s.lookupByINN(ctx, inn)
}

func (s *service) lookupByINN(ctx context.Context, inn string) (Company, error) {
	cacheKey := GetCompanyINNKey(inn)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var comp Company
			if json.Unmarshal([]byte(cached), &comp) == nil {
				return comp, nil
			}
		}
	}

	// The shared flight must not inherit one caller's cancellation; the
	// registry client timeout still bounds it.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(cacheKey, func() (interface{}, error) {
		comp, err := s.repo.GetByINN(flightCtx, inn)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(comp); err == nil {
				if err := s.rdb.Set(flightCtx, cacheKey, jsonData, s.cfg.CacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache company details",
						zap.Error(err),
						zap.String("key", cacheKey),
					)
				}
			}
		}

		return *comp, nil
	})

	select {
	case <-ctx.Done():
		return Company{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Company{}, res.Err
		}
		return res.Val.(Company), nil
	}
}

// mergeBasic keeps the route id and fills identity strings the extended
// record left blank. The registry flag always comes from the extended record.
func mergeBasic(details, basic Company) Company {
	details.ID = basic.ID
	if strings.TrimSpace(details.Name) == "" {
		details.Name = basic.Name
	}
	if strings.TrimSpace(details.INN) == "" {
		details.INN = basic.INN
	}
	if strings.TrimSpace(details.OGRN) == "" {
		details.OGRN = basic.OGRN
	}
	return details
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (Company, error) {
	name := strings.TrimSpace(req.Name)
	inn := strings.TrimSpace(req.INN)
	ogrn := strings.TrimSpace(req.OGRN)
	if name == "" || inn == "" || ogrn == "" {
		return Company{}, companyerrors.ErrMissingRequiredFields
	}

	comp := &Company{
		Name:   name,
		INN:    inn,
		OGRN:   ogrn,
		Reestr: req.Reestr,
	}
	if err := s.repo.Create(ctx, comp); err != nil {
		return Company{}, err
	}

	if s.rdb != nil {
		cacheKey := GetCompanyINNKey(inn)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate company cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	event := events.CompanyAddedEvent{
		EventType:  events.CompanyAddedEventType,
		RequestID:  contextutil.GetRequestID(ctx),
		CompanyID:  comp.ID,
		Name:       comp.Name,
		INN:        comp.INN,
		OGRN:       comp.OGRN,
		Reestr:     comp.Reestr,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishCompanyAdded(ctx, event); err != nil {
		s.logger.Error("failed to publish company added event",
			zap.Error(err),
			zap.Int64("company_id", comp.ID),
		)
	}

	s.logger.Info("company added",
		zap.Int64("company_id", comp.ID),
		zap.String("inn", comp.INN),
	)

	return *comp, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/config"
	"elysian/infras/otel"
	"elysian/internal/domains/report/model/dto"
	"elysian/internal/domains/report/repository"
	"elysian/shared"
	"elysian/shared/cache"
	"elysian/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheRevenueReport = "report:revenue"

	defaultTrendMonths = 12
)

type Report interface {
	Revenue(ctx context.Context) (dto.RevenueReportResponse, error)
	RoomStatus(ctx context.Context) (dto.RoomStatusReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Revenue assembles the three revenue aggregates into one report.
func (s *serviceImpl) Revenue(ctx context.Context) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheRevenueReport)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	byType, err := s.repo.RevenueByRoomType(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue by room type")

		return res, fmt.Errorf("failed to get revenue by room type: %w", err)
	}

	bySource, err := s.repo.RevenueBySource(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue by source")

		return res, fmt.Errorf("failed to get revenue by source: %w", err)
	}

	monthly, err := s.repo.MonthlyTrend(ctx, defaultTrendMonths)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly trend")

		return res, fmt.Errorf("failed to get monthly trend: %w", err)
	}

	res.FromModels(byType, bySource, monthly)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue report to cache")
		}
	}()

	return res, nil
}

// RoomStatus is the live housekeeping dashboard: room counts per status.
// Not cached; it has to reflect check-ins as they happen.
func (s *serviceImpl) RoomStatus(ctx context.Context) (res dto.RoomStatusReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room status counts")

		return res, fmt.Errorf("failed to get room status counts: %w", err)
	}

	res.FromModels(counts)

	return res, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elysian/config"
	"elysian/infras/otel/mocks"
	"elysian/internal/domains/report/model"
	reportMocks "elysian/internal/domains/report/repository/mocks"
	"elysian/internal/domains/report/service"
	cacheMocks "elysian/shared/cache/mocks"
)

func newReportService(ctrl *gomock.Controller) (service.Report, *reportMocks.MockReport, *cacheMocks.MockRedisCache) {
	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestReportService_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newReportService(ctrl)

	ctx := context.Background()

	t.Run("assembles the three aggregates", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			RevenueByRoomType(gomock.Any()).
			Return([]model.RoomTypeRevenue{
				{RoomTypeID: "type-1", RoomTypeName: "Deluxe", BookingCount: 8, Revenue: 1600},
				{RoomTypeID: "type-2", RoomTypeName: "Suite", BookingCount: 2, Revenue: 900},
			}, nil)
		mockRepo.EXPECT().
			RevenueBySource(gomock.Any()).
			Return([]model.SourceBreakdown{
				{Source: "walk_in", BookingCount: 6, Revenue: 1400},
				{Source: "online", BookingCount: 4, Revenue: 1100},
			}, nil)
		mockRepo.EXPECT().
			MonthlyTrend(gomock.Any(), 12).
			Return([]model.MonthlyTrend{
				{Month: "2025-01", BookingCount: 10, Revenue: 2500},
			}, nil)

		res, err := svc.Revenue(ctx)

		assert.NoError(t, err)
		assert.Len(t, res.ByRoomType, 2)
		assert.Equal(t, "Deluxe", res.ByRoomType[0].RoomTypeName)
		assert.Equal(t, 1600.0, res.ByRoomType[0].Revenue)
		assert.Len(t, res.BySource, 2)
		assert.Equal(t, "walk_in", res.BySource[0].Source)
		assert.Len(t, res.Monthly, 1)
		assert.Equal(t, "2025-01", res.Monthly[0].Month)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Revenue(ctx)

		assert.NoError(t, err)
	})

	t.Run("room type aggregate failure", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			RevenueByRoomType(gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Revenue(ctx)

		assert.Error(t, err)
	})

	t.Run("monthly trend failure", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			RevenueByRoomType(gomock.Any()).
			Return([]model.RoomTypeRevenue{}, nil)
		mockRepo.EXPECT().
			RevenueBySource(gomock.Any()).
			Return([]model.SourceBreakdown{}, nil)
		mockRepo.EXPECT().
			MonthlyTrend(gomock.Any(), 12).
			Return(nil, errors.New("database error"))

		_, err := svc.Revenue(ctx)

		assert.Error(t, err)
	})
}

func TestReportService_RoomStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newReportService(ctrl)

	ctx := context.Background()

	t.Run("totals the per status counts", func(t *testing.T) {
		mockRepo.EXPECT().
			RoomStatusCounts(gomock.Any()).
			Return([]model.RoomStatusCount{
				{Status: "available", Count: 12},
				{Status: "occupied", Count: 7},
				{Status: "dirty", Count: 3},
			}, nil)

		res, err := svc.RoomStatus(ctx)

		assert.NoError(t, err)
		assert.Len(t, res.Counts, 3)
		assert.Equal(t, 22, res.Total)
	})

	t.Run("count query failure", func(t *testing.T) {
		mockRepo.EXPECT().
			RoomStatusCounts(gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.RoomStatus(ctx)

		assert.Error(t, err)
	})
}

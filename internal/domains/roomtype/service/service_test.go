package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elysian/config"
	"elysian/infras/otel/mocks"
	"elysian/internal/domains/roomtype/model"
	"elysian/internal/domains/roomtype/model/dto"
	roomTypeMocks "elysian/internal/domains/roomtype/repository/mocks"
	"elysian/internal/domains/roomtype/service"
	cacheMocks "elysian/shared/cache/mocks"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
	gModel "elysian/shared/model"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func deluxeType() model.RoomType {
	return model.RoomType{
		ID:        "type-1",
		Name:      "Deluxe",
		BasePrice: 100,
		Capacity:  2,
		Lifecycle: gModel.Lifecycle{Lifecycle: gModel.LifecycleActive},
	}
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")

	t.Run("successful creation defaults capacity", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, "Suite", roomType.Name)
				assert.Equal(t, 2, roomType.Capacity)
				assert.NotEmpty(t, roomType.ID)

				return nil
			})

		err := svc.Create(ctx, dto.CreateRoomTypeRequest{Name: "Suite", BasePrice: 250})

		assert.NoError(t, err)
	})

	t.Run("insert failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(ctx, dto.CreateRoomTypeRequest{Name: "Suite", BasePrice: 250})

		assert.Error(t, err)
	})
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newRoomTypeService(ctrl)

	ctx := context.Background()
	req := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss hits the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), req, gomock.Any()).
			Return([]model.RoomType{deluxeType()}, nil)

		res, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.RoomTypes, 1)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newRoomTypeService(ctrl)

	ctx := context.Background()

	t.Run("existing room type", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxeType(), nil)

		res, err := svc.Get(ctx, "type-1")

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe", res.Name)
		assert.Equal(t, 100.0, res.BasePrice)
	})

	t.Run("room type not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxeType(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 120.0, fields[model.FieldBasePrice])

				return nil
			})

		err := svc.Update(ctx, dto.UpdateRoomTypeRequest{BasePrice: 120}, "type-1")

		assert.NoError(t, err)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateRoomTypeRequest{}, "type-1")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("deleted room type cannot be updated", func(t *testing.T) {
		deleted := deluxeType()
		deleted.Lifecycle = gModel.Lifecycle{Lifecycle: gModel.LifecycleDeleted}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deleted, nil)

		err := svc.Update(ctx, dto.UpdateRoomTypeRequest{BasePrice: 120}, "type-1")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("room type not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		err := svc.Update(ctx, dto.UpdateRoomTypeRequest{BasePrice: 120}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")

	t.Run("soft delete keeps historical pricing", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, gModel.LifecycleDeleted, fields[model.FieldLifecycle])
				assert.NotNil(t, fields["deleted_at"])

				return nil
			})

		assert.NoError(t, svc.Delete(ctx, "type-1"))
	})

	t.Run("room type not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

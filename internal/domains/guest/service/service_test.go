package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elysian/infras/otel/mocks"
	auditMocks "elysian/internal/domains/audit/service/mocks"
	"elysian/internal/domains/guest/model"
	"elysian/internal/domains/guest/model/dto"
	guestMocks "elysian/internal/domains/guest/repository/mocks"
	"elysian/internal/domains/guest/service"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
)

func newGuestService(ctrl *gomock.Controller) (service.Guest, *guestMocks.MockGuest) {
	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockAudit := auditMocks.NewMockAudit(ctrl)

	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()

	return service.New(mockRepo, mockAudit, mocks.NewOtel()), mockRepo
}

func TestGuestService_FindOrCreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newGuestService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")

	contact := dto.GuestContact{
		FullName:    "John Doe",
		PhoneNumber: "+628123456789",
		Email:       "john@example.com",
	}

	t.Run("creates a guest on first booking", func(t *testing.T) {
		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)
		mockRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, guest model.Guest) error {
				assert.Equal(t, "John Doe", guest.FullName)
				assert.Equal(t, "+628123456789", guest.PhoneNumber)
				assert.NotEmpty(t, guest.ID)

				return nil
			})

		guest, err := svc.FindOrCreateTx(ctx, nil, contact)

		assert.NoError(t, err)
		assert.Equal(t, "+628123456789", guest.PhoneNumber)
		assert.NotEmpty(t, guest.ID)
	})

	t.Run("matches a returning guest by phone and refreshes contact", func(t *testing.T) {
		existing := model.Guest{
			ID:          "guest-1",
			FullName:    "J. Doe",
			PhoneNumber: "+628123456789",
		}

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(existing, nil)
		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "John Doe", fields[model.FieldFullName])
				assert.Equal(t, "john@example.com", fields[model.FieldEmail])

				return nil
			})

		guest, err := svc.FindOrCreateTx(ctx, nil, contact)

		assert.NoError(t, err)
		assert.Equal(t, "guest-1", guest.ID)
		assert.Equal(t, "John Doe", guest.FullName)
		assert.Equal(t, "john@example.com", guest.Email)
	})

	t.Run("blank contact fields never overwrite stored ones", func(t *testing.T) {
		existing := model.Guest{
			ID:          "guest-1",
			FullName:    "John Doe",
			PhoneNumber: "+628123456789",
			Email:       "john@example.com",
		}

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(existing, nil)
		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ gDto.FilterGroup) error {
				_, hasEmail := fields[model.FieldEmail]
				assert.False(t, hasEmail)

				return nil
			})

		guest, err := svc.FindOrCreateTx(ctx, nil, dto.GuestContact{
			FullName:    "John Doe",
			PhoneNumber: "+628123456789",
		})

		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", guest.Email)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Guest{}, errors.New("database error"))

		_, err := svc.FindOrCreateTx(ctx, nil, contact)

		assert.Error(t, err)
	})
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newGuestService(ctrl)

	ctx := context.Background()
	req := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAllWithStats(gomock.Any(), req, gomock.Any()).
		Return([]model.GuestWithStats{
			{Guest: model.Guest{ID: "guest-1", FullName: "John Doe"}},
			{Guest: model.Guest{ID: "guest-2", FullName: "Jane Doe"}},
		}, nil)

	res, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Guests, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newGuestService(ctrl)

	ctx := context.Background()

	t.Run("guest with history", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1", FullName: "John Doe"}, nil)
		mockRepo.EXPECT().
			BookingHistory(gomock.Any(), "guest-1").
			Return([]model.BookingHistory{{BookingID: "booking-1"}}, nil)

		res, err := svc.Get(ctx, "guest-1")

		assert.NoError(t, err)
		assert.Equal(t, "John Doe", res.FullName)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("guest not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestGuestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newGuestService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateGuestRequest{FullName: "John Q. Doe"}, "guest-1")

		assert.NoError(t, err)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateGuestRequest{}, "guest-1")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("guest not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		err := svc.Update(ctx, dto.UpdateGuestRequest{FullName: "John Q. Doe"}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestGuestService_ToggleVIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newGuestService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "manager")

	t.Run("promotes a regular guest", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1", IsVIP: false}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsVIP])

				return nil
			})

		assert.NoError(t, svc.ToggleVIP(ctx, "guest-1"))
	})

	t.Run("demotes a VIP guest", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1", IsVIP: true}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldIsVIP])

				return nil
			})

		assert.NoError(t, svc.ToggleVIP(ctx, "guest-1"))
	})

	t.Run("guest not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		err := svc.ToggleVIP(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

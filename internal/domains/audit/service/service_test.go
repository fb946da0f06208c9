package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elysian/infras/otel/mocks"
	"elysian/internal/domains/audit/model"
	auditMocks "elysian/internal/domains/audit/repository/mocks"
	"elysian/internal/domains/audit/service"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
)

func newAuditService(ctrl *gomock.Controller) (service.Audit, *auditMocks.MockAuditLog) {
	mockRepo := auditMocks.NewMockAuditLog(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	return svc, mockRepo
}

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newAuditService(ctrl)

	t.Run("captures actor and payloads", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
		ctx = context.WithValue(ctx, constant.ContextKeyClientIP, "10.0.0.1")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.AuditLog) error {
				assert.NotEmpty(t, entry.ID)
				assert.Equal(t, "update", entry.Action)
				assert.Equal(t, "rooms", entry.TableName)
				assert.Equal(t, "10.0.0.1", entry.IPAddress)

				if assert.NotNil(t, entry.UserID) {
					assert.Equal(t, "user-1", *entry.UserID)
				}

				if assert.NotNil(t, entry.RecordID) {
					assert.Equal(t, "room-1", *entry.RecordID)
				}

				if assert.NotNil(t, entry.NewValue) {
					assert.JSONEq(t, `{"status":"occupied"}`, *entry.NewValue)
				}

				return nil
			})

		svc.Record(ctx, "update", "rooms", "room-1", nil, map[string]any{"status": "occupied"})
	})

	t.Run("anonymous action leaves actor unset", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.AuditLog) error {
				assert.Nil(t, entry.UserID)
				assert.Nil(t, entry.RecordID)
				assert.Nil(t, entry.OldValue)

				return nil
			})

		svc.Record(context.Background(), "create", "bookings", "", nil, nil)
	})

	t.Run("insert failure never propagates", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.NotPanics(t, func() {
			svc.Record(context.Background(), "delete", "users", "user-2", nil, nil)
		})
	})
}

func TestAuditService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newAuditService(ctrl)

	ctx := context.Background()
	req := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("successful listing", func(t *testing.T) {
		actor := "user-1"

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), req, gomock.Any()).
			Return([]model.AuditLog{
				{ID: "log-1", UserID: &actor, Action: "update", TableName: "rooms"},
			}, nil)

		res, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.AuditLogs, 1)
		assert.Equal(t, "update", res.AuditLogs[0].Action)
	})

	t.Run("count failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

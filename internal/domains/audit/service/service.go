package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"elysian/infras/otel"
	"elysian/internal/domains/audit/model"
	"elysian/internal/domains/audit/model/dto"
	"elysian/internal/domains/audit/repository"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Audit interface {
	// Record appends one immutable log row. It is best-effort: a failed
	// insert is logged and swallowed so it can never roll back or abort the
	// business operation that triggered it.
	Record(ctx context.Context, action, tableName, recordID string, oldValue, newValue any)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo repository.AuditLog
	otel otel.Otel
}

func New(repo repository.AuditLog, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, action, tableName, recordID string, oldValue, newValue any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	entry := model.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		TableName: tableName,
		CreatedAt: timezone.Now(),
	}

	if actor, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && actor != constant.Empty {
		entry.UserID = &actor
	}

	if ip, ok := ctx.Value(constant.ContextKeyClientIP).(string); ok {
		entry.IPAddress = ip
	}

	if recordID != constant.Empty {
		entry.RecordID = &recordID
	}

	entry.OldValue = marshalValue(oldValue)
	entry.NewValue = marshalValue(newValue)

	if err := s.repo.Insert(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("action", action).
			Str("table", tableName).
			Str("record_id", recordID).
			Msg("failed to record audit log, continuing")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func marshalValue(value any) *string {
	if value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal audit value")

		return nil
	}

	str := string(raw)

	return &str
}

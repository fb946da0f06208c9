package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/infras/otel"
	auditService "elysian/internal/domains/audit/service"
	"elysian/internal/domains/guest/model"
	"elysian/internal/domains/guest/model/dto"
	"elysian/internal/domains/guest/repository"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
	"elysian/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Guest interface {
	// FindOrCreateTx resolves the guest identified by the contact's phone
	// number inside the caller's transaction, creating it on first booking
	// and refreshing contact fields on a match.
	FindOrCreateTx(ctx context.Context, sqltx *sqlx.Tx, contact dto.GuestContact) (model.Guest, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	ToggleVIP(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	audit auditService.Audit
	otel  otel.Otel
}

func New(repo repository.Guest, audit auditService.Audit, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		audit: audit,
		otel:  otel,
	}
}

func (s *serviceImpl) FindOrCreateTx(ctx context.Context, sqltx *sqlx.Tx, contact dto.GuestContact) (guest model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindOrCreateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPhoneNumber, Value: contact.PhoneNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	guest, err = s.repo.GetTx(ctx, sqltx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find guest by phone")

		return guest, fmt.Errorf("failed to find guest by phone: %w", err)
	}

	if guest.ID == constant.Empty {
		guest = contact.ToModel(user)
		if err = s.repo.InsertTx(ctx, sqltx, guest); err != nil {
			log.Error().Err(err).Msg("failed to create guest")

			return guest, fmt.Errorf("failed to create guest: %w", err)
		}

		return guest, nil
	}

	// Returning guest: refresh the contact fields the booking supplied.
	updatedFields := map[string]any{
		model.FieldFullName:      contact.FullName,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if contact.Email != constant.Empty {
		updatedFields[model.FieldEmail] = contact.Email
	}

	if contact.Telegram != constant.Empty {
		updatedFields[model.FieldTelegram] = contact.Telegram
	}

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, shared.FilterByID(guest.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to refresh guest contact")

		return guest, fmt.Errorf("failed to refresh guest contact: %w", err)
	}

	guest.FullName = contact.FullName

	if contact.Email != constant.Empty {
		guest.Email = contact.Email
	}

	if contact.Telegram != constant.Empty {
		guest.Telegram = contact.Telegram
	}

	return guest, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAllWithStats(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest") // nolint:wrapcheck
	}

	history, err := s.repo.BookingHistory(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest booking history")

		return res, fmt.Errorf("failed to get guest booking history: %w", err)
	}

	res.FromModel(guest, history)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateGuestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("guest") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.audit.Record(ctx, "update", model.TableName, id, current, updatedFields)

	return nil
}

func (s *serviceImpl) ToggleVIP(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleVIP")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return fmt.Errorf("failed to get guest: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("guest") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsVIP:         !current.IsVIP,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle guest VIP flag")

		return fmt.Errorf("failed to toggle guest VIP flag: %w", err)
	}

	s.audit.Record(ctx, "toggle_vip", model.TableName, id,
		map[string]any{model.FieldIsVIP: current.IsVIP},
		map[string]any{model.FieldIsVIP: !current.IsVIP},
	)

	return nil
}

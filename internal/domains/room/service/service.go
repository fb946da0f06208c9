package service

import (
	"context"
	"fmt"
	"time"

	"elysian/config"
	"elysian/infras/otel"
	auditService "elysian/internal/domains/audit/service"
	"elysian/internal/domains/room/model"
	"elysian/internal/domains/room/model/dto"
	"elysian/internal/domains/room/repository"
	"elysian/shared"
	"elysian/shared/cache"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom       = "room:get"
	cacheGetAllRoom    = "room:gets"
	cacheCountRoom     = "room:count"
	cacheAvailableRoom = "room:available"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	QueryAvailable(ctx context.Context, req dto.AvailableRoomsRequest) (dto.GetAvailableRoomsResponse, error)
	Clean(ctx context.Context, id string) error
	ToggleMaintenance(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	audit auditService.Audit
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, audit auditService.Audit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
	}()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomNumber, Value: req.RoomNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldLifecycle, Value: gModel.LifecycleDeleted, Operator: gDto.FilterOperatorNotEq, Table: model.TableName, ArgName: "lifecycle_not"},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number uniqueness")

		return fmt.Errorf("failed to check room number uniqueness: %w", err)
	}

	if duplicate {
		return failure.BadRequestFromString("room number already in use") // nolint:wrapcheck
	}

	mod := req.ToModel(user)
	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.audit.Record(ctx, "create", model.TableName, mod.ID, nil, mod)
	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room") // nolint:wrapcheck
	}

	if current.Lifecycle.Lifecycle == gModel.LifecycleDeleted {
		return failure.BadRequestFromString("room is deleted") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.audit.Record(ctx, "update", model.TableName, id, current, updatedFields)
	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room") // nolint:wrapcheck
	}

	if current.Status == model.StatusOccupied {
		return failure.BadRequestFromString("cannot delete an occupied room") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldLifecycle: gModel.LifecycleDeleted,
		"deleted_at":         timezone.Now(),
		"modified_at":        timezone.Now(),
		"modified_by":        user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.audit.Record(ctx, "delete", model.TableName, id, current, nil)
	s.invalidateListings(ctx)

	return nil
}

// QueryAvailable answers the public availability query. With stay dates it
// excludes rooms holding any overlapping active booking; without dates it
// falls back to the current room status.
func (s *serviceImpl) QueryAvailable(ctx context.Context, req dto.AvailableRoomsRequest) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if (req.CheckInDate == constant.Empty) != (req.CheckOutDate == constant.Empty) {
		return res, failure.BadRequestFromString("check_in_date and check_out_date must be provided together") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailableRoom, req.CheckInDate, req.CheckOutDate)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	var rooms []model.Room

	if req.CheckInDate != constant.Empty {
		var checkIn, checkOut time.Time

		checkIn, err = timezone.Parse(constant.StayDateFormat, req.CheckInDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid check_in_date") // nolint:wrapcheck
		}

		checkOut, err = timezone.Parse(constant.StayDateFormat, req.CheckOutDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid check_out_date") // nolint:wrapcheck
		}

		if !checkOut.After(checkIn) {
			return res, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
		}

		rooms, err = s.repo.AvailableBetween(ctx, checkIn, checkOut)
	} else {
		rooms, err = s.repo.AvailableNow(ctx)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to query available rooms")

		return res, fmt.Errorf("failed to query available rooms: %w", err)
	}

	res.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available rooms to cache")
		}
	}()

	return res, nil
}

// Clean performs the housekeeping action returning a dirty or maintenance
// room to available.
func (s *serviceImpl) Clean(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clean")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.housekeepingTransition(ctx, id, "clean", func(room model.Room) (string, error) {
		if !room.HousekeepingCleanable() {
			return constant.Empty, failure.InvalidStateTransition(room.Status, model.StatusAvailable) // nolint:wrapcheck
		}

		return model.StatusAvailable, nil
	})
}

// ToggleMaintenance flips a room between dirty and maintenance. An occupied
// room cannot be taken out of service under a guest.
func (s *serviceImpl) ToggleMaintenance(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.housekeepingTransition(ctx, id, "toggle_maintenance", func(room model.Room) (string, error) {
		switch room.Status {
		case model.StatusMaintenance:
			return model.StatusDirty, nil
		case model.StatusOccupied:
			return constant.Empty, failure.InvalidStateTransition(room.Status, model.StatusMaintenance) // nolint:wrapcheck
		default:
			return model.StatusMaintenance, nil
		}
	})
}

func (s *serviceImpl) housekeepingTransition(ctx context.Context, id, action string, next func(model.Room) (string, error)) error {
	user := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room") // nolint:wrapcheck
	}

	status, err := next(room)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.audit.Record(ctx, action, model.TableName, id,
		map[string]any{model.FieldStatus: room.Status},
		map[string]any{model.FieldStatus: status},
	)
	s.invalidateListings(ctx)

	return nil
}

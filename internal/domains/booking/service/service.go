package service

import (
	"context"
	"fmt"
	"time"

	"elysian/config"
	"elysian/infras/otel"
	"elysian/infras/postgres"
	auditService "elysian/internal/domains/audit/service"
	"elysian/internal/domains/booking/model"
	"elysian/internal/domains/booking/model/dto"
	"elysian/internal/domains/booking/repository"
	guestService "elysian/internal/domains/guest/service"
	paymentModel "elysian/internal/domains/payment/model"
	paymentDto "elysian/internal/domains/payment/model/dto"
	paymentRepository "elysian/internal/domains/payment/repository"
	roomModel "elysian/internal/domains/room/model"
	roomRepository "elysian/internal/domains/room/repository"
	roomtypeModel "elysian/internal/domains/roomtype/model"
	roomtypeRepository "elysian/internal/domains/roomtype/repository"
	"elysian/internal/notifier"
	"elysian/shared"
	"elysian/shared/cache"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
	"elysian/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheAvailableRoom = "room:available"
)

type Booking interface {
	CreateWalkIn(ctx context.Context, req dto.CreateWalkInRequest) (dto.BookingResponse, error)
	CreateRequest(ctx context.Context, req dto.CreateOnlineRequest) (dto.BookingStatusResponse, error)
	Approve(ctx context.Context, id string) (dto.BookingResponse, error)
	Reject(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	GetStatus(ctx context.Context, bookingUUID string) (dto.BookingStatusResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	rooms    roomRepository.Room
	types    roomtypeRepository.RoomType
	payments paymentRepository.Payment
	guests   guestService.Guest
	audit    auditService.Audit
	notify   notifier.StaffNotifier
	tx       postgres.TxRunner
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepository.Room,
	types roomtypeRepository.RoomType,
	payments paymentRepository.Payment,
	guests guestService.Guest,
	audit auditService.Audit,
	notify notifier.StaffNotifier,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		rooms:    rooms,
		types:    types,
		payments: payments,
		guests:   guests,
		audit:    audit,
		notify:   notify,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) invalidateAvailability(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
	}()
}

// lockRoomTx locks the room row for the duration of the transaction. Every
// lifecycle transition takes this lock, so concurrent operations on the
// same room serialize and the loser re-reads committed state.
func (s *serviceImpl) lockRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) (roomModel.Room, error) {
	room, err := s.rooms.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) parseStayDates(checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.StayDateFormat, checkInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in_date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.StayDateFormat, checkOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out_date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

// today returns midnight of the current date in the application timezone,
// comparable with parsed stay dates.
func today() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CreateWalkIn creates a front-desk booking born approved, occupies the
// room, and records the opening payment, all in one transaction.
func (s *serviceImpl) CreateWalkIn(ctx context.Context, req dto.CreateWalkInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWalkIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	checkIn, checkOut, err := s.parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		room, err := s.lockRoomTx(ctx, sqltx, req.RoomID)
		if err != nil {
			return err
		}

		if !room.IsBookable() {
			return failure.RoomConflict("room is not available for booking") // nolint:wrapcheck
		}

		// A dirty room needs housekeeping before the next guest moves in.
		// Future-dated walk-ins may still hold it.
		if room.Status == roomModel.StatusDirty && !checkIn.After(today()) {
			return failure.RoomConflict("room requires cleaning before occupancy") // nolint:wrapcheck
		}

		conflict, err := s.repo.FindConflictTx(ctx, sqltx, room.ID, checkIn, checkOut, constant.Empty)
		if err != nil {
			return err
		}

		if conflict.ID != constant.Empty {
			return failure.RoomConflict("room already booked for the requested dates") // nolint:wrapcheck
		}

		roomType, err := s.types.GetTx(ctx, sqltx, shared.FilterByID(room.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
		if err != nil {
			return err
		}

		if roomType.ID == constant.Empty || !roomType.IsBookable() {
			return failure.RoomConflict("room type is not available for booking") // nolint:wrapcheck
		}

		guest, err := s.guests.FindOrCreateTx(ctx, sqltx, req.Guest)
		if err != nil {
			return err
		}

		booking = dto.NewBooking(guest.ID, req.Guest, room.ID, checkIn, checkOut,
			model.StatusApproved, model.SourceWalkIn, roomType.BasePrice, req.SpecialRequests, req.Notes, user)

		if req.PaymentAmount > booking.TotalPrice+paymentModel.BalanceTolerance {
			return failure.PaymentExceedsBalance(booking.TotalPrice) // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return err
		}

		if err := s.rooms.UpdateTx(ctx, sqltx, map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return err
		}

		payment := paymentDto.RecordPaymentRequest{
			Amount: req.PaymentAmount,
			Method: req.PaymentMethod,
		}

		if err := s.payments.InsertTx(ctx, sqltx, payment.ToModel(booking.ID, user)); err != nil {
			return err
		}

		booking.RoomNumber = room.RoomNumber

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create walk-in booking")

		return res, err
	}

	s.audit.Record(ctx, "create_walk_in", model.TableName, booking.ID, nil, booking)
	s.invalidateAvailability(ctx)

	res.FromModel(booking)

	return res, nil
}

// CreateRequest is the public online booking request. The booking is born
// pending and the room is left untouched; a pending request still blocks
// the dates (first-pending-wins until staff disposition).
func (s *serviceImpl) CreateRequest(ctx context.Context, req dto.CreateOnlineRequest) (res dto.BookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	checkIn, checkOut, err := s.parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		duplicate, err := s.repo.PendingExistsByContactTx(ctx, sqltx, req.Guest.PhoneNumber, req.Guest.Telegram)
		if err != nil {
			return err
		}

		if duplicate {
			return failure.DuplicateRequest("a pending booking request already exists for this contact") // nolint:wrapcheck
		}

		room, err := s.lockRoomTx(ctx, sqltx, req.RoomID)
		if err != nil {
			return err
		}

		if !room.IsBookable() {
			return failure.RoomConflict("room is not available for booking") // nolint:wrapcheck
		}

		conflict, err := s.repo.FindConflictTx(ctx, sqltx, room.ID, checkIn, checkOut, constant.Empty)
		if err != nil {
			return err
		}

		if conflict.ID != constant.Empty {
			return failure.RoomConflict("room already booked for the requested dates") // nolint:wrapcheck
		}

		roomType, err := s.types.GetTx(ctx, sqltx, shared.FilterByID(room.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
		if err != nil {
			return err
		}

		if roomType.ID == constant.Empty || !roomType.IsBookable() {
			return failure.RoomConflict("room type is not available for booking") // nolint:wrapcheck
		}

		guest, err := s.guests.FindOrCreateTx(ctx, sqltx, req.Guest)
		if err != nil {
			return err
		}

		booking = dto.NewBooking(guest.ID, req.Guest, room.ID, checkIn, checkOut,
			model.StatusPending, model.SourceOnline, roomType.BasePrice, req.SpecialRequests, constant.Empty, user)

		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return err
		}

		booking.RoomNumber = room.RoomNumber

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create online booking request")

		return res, err
	}

	s.audit.Record(ctx, "create_request", model.TableName, booking.ID, nil, booking)
	s.invalidateAvailability(ctx)

	go s.notify.NotifyBookingRequest(context.WithoutCancel(ctx), notifier.BookingAlert{
		BookingUUID:  booking.UUID,
		GuestName:    booking.GuestName,
		PhoneNumber:  booking.PhoneNumber,
		RoomNumber:   booking.RoomNumber,
		CheckInDate:  timezone.Format(booking.CheckInDate, constant.StayDateFormat),
		CheckOutDate: timezone.Format(booking.CheckOutDate, constant.StayDateFormat),
		TotalPrice:   booking.TotalPrice,
	})

	res.FromModel(booking)

	return res, nil
}

// Approve re-checks availability inside the transaction before committing
// the room: the guard between a guest's request and staff's later action.
func (s *serviceImpl) Approve(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, "approve", model.StatusApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, "reject", model.StatusRejected)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, "check_in", model.StatusCheckedIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, "check_out", model.StatusCheckedOut)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, "cancel", model.StatusCancelled)
}

// transition runs one lifecycle step: lock booking row, lock room row,
// validate the state machine, apply room side effects, update the booking.
// Everything commits atomically; the audit row is recorded after commit.
func (s *serviceImpl) transition(ctx context.Context, id, action, to string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition."+action)
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	var before, after model.Booking

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking") // nolint:wrapcheck
		}

		if !model.CanTransition(booking.Status, to) {
			return failure.InvalidStateTransition(booking.Status, to) // nolint:wrapcheck
		}

		room, err := s.lockRoomTx(ctx, sqltx, booking.RoomID)
		if err != nil {
			return err
		}

		if err := s.applyRoomSideEffect(ctx, sqltx, booking, room, to, user); err != nil {
			return err
		}

		if err := s.repo.UpdateTx(ctx, sqltx, map[string]any{
			model.FieldStatus:        to,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		before = booking
		after = booking
		after.Status = to
		after.RoomNumber = room.RoomNumber

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("action", action).Str("booking_id", id).Msg("failed to transition booking")

		return res, err
	}

	s.audit.Record(ctx, action, model.TableName, id,
		map[string]any{model.FieldStatus: before.Status},
		map[string]any{model.FieldStatus: after.Status},
	)
	s.invalidateAvailability(ctx)

	res.FromModel(after)

	return res, nil
}

// applyRoomSideEffect applies the room-status companion update for a
// lifecycle transition, within the same transaction.
func (s *serviceImpl) applyRoomSideEffect(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, room roomModel.Room, to, user string) error {
	var status string

	switch to {
	case model.StatusApproved:
		// The room must still be free for the dates: re-validate instead of
		// trusting the read that happened at request time.
		conflict, err := s.repo.FindConflictTx(ctx, sqltx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
		if err != nil {
			return err
		}

		if conflict.ID != constant.Empty {
			return failure.RoomConflict("room already booked for the requested dates") // nolint:wrapcheck
		}

		status = roomModel.StatusOccupied
	case model.StatusCheckedIn:
		status = roomModel.StatusOccupied
	case model.StatusCheckedOut:
		// Housekeeping must clean the room before it can be sold again.
		status = roomModel.StatusDirty
	case model.StatusCancelled, model.StatusRejected:
		if !model.IsHolding(booking.Status) {
			return nil
		}

		holder, err := s.repo.HasActiveHolderTx(ctx, sqltx, booking.RoomID, booking.ID)
		if err != nil {
			return err
		}

		if holder {
			// Another active booking still holds the room; leave it be.
			return nil
		}

		status = roomModel.StatusAvailable
	default:
		return nil
	}

	return s.rooms.UpdateTx(ctx, sqltx, map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
}

// GetStatus is the public lookup keyed by the booking's opaque reference.
func (s *serviceImpl) GetStatus(ctx context.Context, bookingUUID string) (res dto.BookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingUUID, model.FieldUUID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking status")

		return res, fmt.Errorf("failed to get booking status: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

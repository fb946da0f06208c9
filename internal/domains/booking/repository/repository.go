package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/booking/model"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/logger"
	gRepo "elysian/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	FindConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (model.Booking, error)
	HasActiveHolderTx(ctx context.Context, sqltx *sqlx.Tx, roomID, excludeBookingID string) (bool, error)
	PendingExistsByContactTx(ctx context.Context, sqltx *sqlx.Tx, phoneNumber, telegram string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindConflictTx returns the first active booking on the room whose
// half-open stay interval overlaps [checkIn, checkOut). An interval ending
// exactly on checkIn does not conflict (same-day turnover). Runs through the
// caller's transaction so the answer holds against concurrent transitions.
func (repo *repositoryImpl) FindConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindConflictTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	// exclude_id is compared as text: creation passes an empty string for
	// "no exclusion", which the uuid type would refuse to bind.
	query := `SELECT bookings.* FROM bookings
		WHERE bookings.room_id = :room_id
		  AND bookings.status IN ('pending', 'approved', 'checked_in')
		  AND bookings.check_in_date < :check_out
		  AND bookings.check_out_date > :check_in
		  AND (:exclude_id = '' OR bookings.id::text != :exclude_id)
		LIMIT 1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":    roomID,
		"check_in":   checkIn,
		"check_out":  checkOut,
		"exclude_id": excludeBookingID,
	}

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to prepare statement (booking): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to find conflicting booking: %w", err)
	}

	return booking, nil
}

// HasActiveHolderTx reports whether another approved or checked-in booking
// still references the room, which decides whether a cancel releases it.
func (repo *repositoryImpl) HasActiveHolderTx(ctx context.Context, sqltx *sqlx.Tx, roomID, excludeBookingID string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasActiveHolderTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE bookings.room_id = :room_id
		  AND bookings.status IN ('approved', 'checked_in')
		  AND bookings.id != :exclude_id
	)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":    roomID,
		"exclude_id": excludeBookingID,
	}

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to prepare statement (booking): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &exists, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check active room holder: %w", err)
	}

	return exists, nil
}

// PendingExistsByContactTx reports whether the contact already has a pending
// request, matching by phone number or telegram handle.
func (repo *repositoryImpl) PendingExistsByContactTx(ctx context.Context, sqltx *sqlx.Tx, phoneNumber, telegram string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.PendingExistsByContactTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE bookings.status = 'pending'
		  AND (bookings.phone_number = :phone_number
			OR (:telegram != '' AND bookings.telegram = :telegram))
	)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"phone_number": phoneNumber,
		"telegram":     telegram,
	}

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to prepare statement (booking): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &exists, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check pending request by contact: %w", err)
	}

	return exists, nil
}

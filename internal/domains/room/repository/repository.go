package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/room/model"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/logger"
	gModel "elysian/shared/model"
	gRepo "elysian/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	AvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error)
	AvailableNow(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const availableColumns = `rooms.id, rooms.room_number, rooms.room_type_id, rooms.floor, rooms.status, rooms.notes,
	room_types.name AS room_type_name, room_types.base_price AS room_type_base_price`

// AvailableBetween lists live rooms with no active booking overlapping the
// half-open stay interval [checkIn, checkOut). A booking ending exactly on
// checkIn does not block: same-day turnover is allowed.
func (repo *repositoryImpl) AvailableBetween(ctx context.Context, checkIn, checkOut time.Time) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailableBetween")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s
		FROM rooms
		JOIN room_types ON room_types.id = rooms.room_type_id
		WHERE rooms.lifecycle = :lifecycle
		  AND room_types.lifecycle = :lifecycle
		  AND rooms.status != :maintenance
		  AND NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
			  AND bookings.status IN ('pending', 'approved', 'checked_in')
			  AND bookings.check_in_date < :check_out
			  AND bookings.check_out_date > :check_in
		  )
		ORDER BY rooms.room_number`, availableColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"lifecycle":   gModel.LifecycleActive,
		"maintenance": model.StatusMaintenance,
		"check_in":    checkIn,
		"check_out":   checkOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return rooms, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)

		return rooms, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

// AvailableNow lists live rooms currently in the available status.
func (repo *repositoryImpl) AvailableNow(ctx context.Context) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailableNow")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s
		FROM rooms
		JOIN room_types ON room_types.id = rooms.room_type_id
		WHERE rooms.lifecycle = :lifecycle
		  AND room_types.lifecycle = :lifecycle
		  AND rooms.status = :status
		ORDER BY rooms.room_number`, availableColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"lifecycle": gModel.LifecycleActive,
		"status":    model.StatusAvailable,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return rooms, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)

		return rooms, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

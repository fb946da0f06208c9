package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/guest/model"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/logger"
	gRepo "elysian/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetAllWithStats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.GuestWithStats, error)
	BookingHistory(ctx context.Context, guestID string) ([]model.BookingHistory, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithStats lists guests together with their completed-stay count and
// total payments collected across their bookings.
func (repo *repositoryImpl) GetAllWithStats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (guests []model.GuestWithStats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetAllWithStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := repo.BuildWhereClause(ctx, filter)

	pagination := constant.Empty
	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf(`SELECT guests.*,
		COALESCE(stats.stay_count, 0) AS stay_count,
		COALESCE(stats.total_spend, 0) AS total_spend
		FROM guests
		LEFT JOIN (
			SELECT bookings.guest_id,
				COUNT(*) FILTER (WHERE bookings.status = 'checked_out') AS stay_count,
				COALESCE(SUM(payments.amount), 0) AS total_spend
			FROM bookings
			LEFT JOIN payments ON payments.booking_id = bookings.id
			GROUP BY bookings.guest_id
		) stats ON stats.guest_id = guests.id
		%s
		ORDER BY guests.created_at DESC
		%s`, where, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return guests, fmt.Errorf("failed to prepare statement (guest): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &guests, args); err != nil {
		logger.ErrorWithStack(err)

		return guests, fmt.Errorf("failed to get guests with stats: %w", err)
	}

	return guests, nil
}

// BookingHistory lists a guest's stays, newest first.
func (repo *repositoryImpl) BookingHistory(ctx context.Context, guestID string) (history []model.BookingHistory, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.BookingHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT bookings.id AS booking_id, rooms.room_number,
		bookings.check_in_date, bookings.check_out_date, bookings.status, bookings.total_price
		FROM bookings
		JOIN rooms ON rooms.id = bookings.room_id
		WHERE bookings.guest_id = :guest_id
		ORDER BY bookings.check_in_date DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return history, fmt.Errorf("failed to prepare statement (guest): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &history, map[string]any{"guest_id": guestID}); err != nil {
		logger.ErrorWithStack(err)

		return history, fmt.Errorf("failed to get guest booking history: %w", err)
	}

	return history, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/report/model"
	"elysian/shared/constant"
	"elysian/shared/logger"
)

// Revenue figures only count bookings that went through a stay or are in
// one: cancelled, rejected and still-pending requests carry no revenue.
const revenueStatuses = `('approved', 'checked_in', 'checked_out')`

type Report interface {
	RevenueByRoomType(ctx context.Context) ([]model.RoomTypeRevenue, error)
	RevenueBySource(ctx context.Context) ([]model.SourceBreakdown, error)
	MonthlyTrend(ctx context.Context, months int) ([]model.MonthlyTrend, error)
	RoomStatusCounts(ctx context.Context) ([]model.RoomStatusCount, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) selectReport(ctx context.Context, scopeName, query string, dest any, args map[string]any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report."+scopeName)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement (report): %w", err)
	}
	defer prepare.Close()

	if args == nil {
		args = map[string]any{}
	}

	if err = prepare.SelectContext(ctx, dest, args); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to run report query %s: %w", scopeName, err)
	}

	return nil
}

func (repo *repositoryImpl) RevenueByRoomType(ctx context.Context) (res []model.RoomTypeRevenue, err error) {
	query := `SELECT room_types.id AS room_type_id, room_types.name AS room_type_name,
		COUNT(bookings.id) AS booking_count,
		COALESCE(SUM(bookings.total_price), 0) AS revenue
		FROM bookings
		JOIN rooms ON rooms.id = bookings.room_id
		JOIN room_types ON room_types.id = rooms.room_type_id
		WHERE bookings.status IN ` + revenueStatuses + `
		GROUP BY room_types.id, room_types.name
		ORDER BY revenue DESC`

	err = repo.selectReport(ctx, "RevenueByRoomType", query, &res, nil)

	return res, err
}

func (repo *repositoryImpl) RevenueBySource(ctx context.Context) (res []model.SourceBreakdown, err error) {
	query := `SELECT bookings.source, COUNT(bookings.id) AS booking_count,
		COALESCE(SUM(bookings.total_price), 0) AS revenue
		FROM bookings
		WHERE bookings.status IN ` + revenueStatuses + `
		GROUP BY bookings.source
		ORDER BY revenue DESC`

	err = repo.selectReport(ctx, "RevenueBySource", query, &res, nil)

	return res, err
}

// MonthlyTrend buckets revenue by check-in month over the trailing window.
func (repo *repositoryImpl) MonthlyTrend(ctx context.Context, months int) (res []model.MonthlyTrend, err error) {
	query := `SELECT TO_CHAR(DATE_TRUNC('month', bookings.check_in_date), 'YYYY-MM') AS month,
		COUNT(bookings.id) AS booking_count,
		COALESCE(SUM(bookings.total_price), 0) AS revenue
		FROM bookings
		WHERE bookings.status IN ` + revenueStatuses + `
		  AND bookings.check_in_date >= DATE_TRUNC('month', NOW()) - (:months || ' months')::interval
		GROUP BY DATE_TRUNC('month', bookings.check_in_date)
		ORDER BY month`

	err = repo.selectReport(ctx, "MonthlyTrend", query, &res, map[string]any{"months": months})

	return res, err
}

func (repo *repositoryImpl) RoomStatusCounts(ctx context.Context) (res []model.RoomStatusCount, err error) {
	query := `SELECT rooms.status, COUNT(rooms.id) AS count
		FROM rooms
		WHERE rooms.lifecycle != 'deleted'
		GROUP BY rooms.status
		ORDER BY rooms.status`

	err = repo.selectReport(ctx, "RoomStatusCounts", query, &res, nil)

	return res, err
}

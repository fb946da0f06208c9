package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/payment/model"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/logger"
	gRepo "elysian/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (float64, error)
	OutstandingBalances(ctx context.Context) ([]model.OutstandingBalance, error)
	Stats(ctx context.Context) (total float64, count int, methods []model.MethodStat, err error)
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumForBookingTx totals the booking's payments through the caller's
// transaction so the ledger check sees rows the transaction wrote.
func (repo *paymentRepositoryImpl) SumForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (total float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.SumForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = :booking_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (payment): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &total, map[string]any{"booking_id": bookingID}); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum payments for booking: %w", err)
	}

	return total, nil
}

// OutstandingBalances aggregates payable minus paid per booking across the
// statuses that owe money, filtered above the settlement epsilon so float
// noise never shows up as a receivable.
func (repo *paymentRepositoryImpl) OutstandingBalances(ctx context.Context) (balances []model.OutstandingBalance, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.OutstandingBalances")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT bookings.id AS booking_id, bookings.uuid AS booking_uuid,
		bookings.guest_name, rooms.room_number, bookings.status,
		bookings.check_in_date, bookings.check_out_date,
		bookings.total_price + COALESCE(charges.total, 0) AS payable,
		COALESCE(paid.total, 0) AS paid,
		bookings.total_price + COALESCE(charges.total, 0) - COALESCE(paid.total, 0) AS balance
		FROM bookings
		JOIN rooms ON rooms.id = bookings.room_id
		LEFT JOIN (
			SELECT booking_id, SUM(amount) AS total FROM room_charges GROUP BY booking_id
		) charges ON charges.booking_id = bookings.id
		LEFT JOIN (
			SELECT booking_id, SUM(amount) AS total FROM payments GROUP BY booking_id
		) paid ON paid.booking_id = bookings.id
		WHERE bookings.status IN ('approved', 'checked_in', 'checked_out')
		  AND bookings.total_price + COALESCE(charges.total, 0) - COALESCE(paid.total, 0) > :epsilon
		ORDER BY bookings.check_in_date`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return balances, fmt.Errorf("failed to prepare statement (payment): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &balances, map[string]any{"epsilon": model.OutstandingEpsilon}); err != nil {
		logger.ErrorWithStack(err)

		return balances, fmt.Errorf("failed to get outstanding balances: %w", err)
	}

	return balances, nil
}

// Stats returns collected totals and the per-method breakdown.
func (repo *paymentRepositoryImpl) Stats(ctx context.Context) (total float64, count int, methods []model.MethodStat, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	totalsQuery := `SELECT COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count FROM payments`
	scope.SetAttribute(constant.OtelQueryAttributeKey, totalsQuery)

	var totals struct {
		Total float64 `db:"total"`
		Count int     `db:"count"`
	}

	if err = repo.db.Read.GetContext(ctx, &totals, totalsQuery); err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, nil, fmt.Errorf("failed to get payment totals: %w", err)
	}

	methodsQuery := `SELECT method, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM payments GROUP BY method ORDER BY total DESC`

	if err = repo.db.Read.SelectContext(ctx, &methods, methodsQuery); err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, nil, fmt.Errorf("failed to get payment method stats: %w", err)
	}

	return totals.Total, totals.Count, methods, nil
}

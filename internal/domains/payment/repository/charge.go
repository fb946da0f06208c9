package repository

//go:generate go run go.uber.org/mock/mockgen -source=./charge.go -destination=./mocks/charge_mock.go -package=mocks

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

type RoomCharge interface {
	Insert(ctx context.Context, model model.RoomCharge) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomCharge) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomCharge, error)
	SumForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (float64, error)
}

type chargeRepositoryImpl struct {
	gRepo.Repository[model.RoomCharge]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRoomCharge(db *postgres.Connection, otel otel.Otel) RoomCharge {
	return &chargeRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomCharge](model.ChargeEntityName, model.ChargeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *chargeRepositoryImpl) SumForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (total float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_charge.SumForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COALESCE(SUM(amount), 0) FROM room_charges WHERE booking_id = :booking_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (room_charge): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &total, map[string]any{"booking_id": bookingID}); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum room charges for booking: %w", err)
	}

	return total, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/config"
	"elysian/infras/otel"
	"elysian/infras/postgres"
	auditService "elysian/internal/domains/audit/service"
	bookingModel "elysian/internal/domains/booking/model"
	bookingRepository "elysian/internal/domains/booking/repository"
	"elysian/internal/domains/payment/model"
	"elysian/internal/domains/payment/model/dto"
	"elysian/internal/domains/payment/repository"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Payment interface {
	RecordPayment(ctx context.Context, bookingID string, req dto.RecordPaymentRequest) (dto.PaymentResponse, error)
	RecordCharge(ctx context.Context, bookingID string, req dto.RecordChargeRequest) (dto.RoomChargeResponse, error)
	ListByBooking(ctx context.Context, bookingID string) (dto.BookingLedgerResponse, error)
	OutstandingBalances(ctx context.Context) (dto.GetOutstandingBalancesResponse, error)
	Stats(ctx context.Context) (dto.PaymentStatsResponse, error)
}

type serviceImpl struct {
	payments repository.Payment
	charges  repository.RoomCharge
	bookings bookingRepository.Booking
	audit    auditService.Audit
	tx       postgres.TxRunner
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	payments repository.Payment,
	charges repository.RoomCharge,
	bookings bookingRepository.Booking,
	audit auditService.Audit,
	tx postgres.TxRunner,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		payments: payments,
		charges:  charges,
		bookings: bookings,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
		otel:     otel,
	}
}

// payableTx computes the booking's total payable and total paid inside the
// transaction that holds the booking row lock, so concurrent payments
// serialize on the same figures.
func (s *serviceImpl) payableTx(ctx context.Context, sqltx *sqlx.Tx, booking bookingModel.Booking) (payable, paid float64, err error) {
	charges, err := s.charges.SumForBookingTx(ctx, sqltx, booking.ID)
	if err != nil {
		return payable, paid, err
	}

	paid, err = s.payments.SumForBookingTx(ctx, sqltx, booking.ID)
	if err != nil {
		return payable, paid, err
	}

	return booking.TotalPrice + charges, paid, nil
}

// RecordPayment records a payment against a booking. The amount may not
// exceed the outstanding balance beyond the cash rounding tolerance.
func (s *serviceImpl) RecordPayment(ctx context.Context, bookingID string, req dto.RecordPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	var payment model.Payment

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, sqltx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking") // nolint:wrapcheck
		}

		if !bookingModel.AcceptsPayments(booking.Status) {
			return failure.BadRequestFromString(fmt.Sprintf("cannot record a payment on a %s booking", booking.Status)) // nolint:wrapcheck
		}

		payable, paid, err := s.payableTx(ctx, sqltx, booking)
		if err != nil {
			return err
		}

		// The tolerance absorbs currency rounding on the final settle. A
		// settled booking takes no further payments at all.
		outstanding := payable - paid
		if outstanding <= 0 || req.Amount > outstanding+model.BalanceTolerance {
			return failure.PaymentExceedsBalance(outstanding) // nolint:wrapcheck
		}

		payment = req.ToModel(booking.ID, user)

		return s.payments.InsertTx(ctx, sqltx, payment)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to record payment")

		return res, err
	}

	s.audit.Record(ctx, "record_payment", model.TableName, payment.ID, nil, payment)

	res.FromModel(payment)

	return res, nil
}

// RecordCharge adds a room charge (minibar, laundry, damages) to a
// checked-in booking. Charges raise the payable amount.
func (s *serviceImpl) RecordCharge(ctx context.Context, bookingID string, req dto.RecordChargeRequest) (res dto.RoomChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ActorFromContext(ctx)

	var charge model.RoomCharge

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, sqltx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking") // nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusCheckedIn {
			return failure.BadRequestFromString(fmt.Sprintf("cannot add a charge to a %s booking", booking.Status)) // nolint:wrapcheck
		}

		charge = req.ToModel(booking.ID, user)

		return s.charges.InsertTx(ctx, sqltx, charge)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to record room charge")

		return res, err
	}

	s.audit.Record(ctx, "record_charge", model.ChargeTableName, charge.ID, nil, charge)

	res.FromModel(charge)

	return res, nil
}

// ListByBooking returns the booking's full ledger: payments, charges and
// the derived balance figures.
func (s *serviceImpl) ListByBooking(ctx context.Context, bookingID string) (res dto.BookingLedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)

	payments, err := s.payments.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	charges, err := s.charges.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, model.FieldBookingID, model.ChargeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room charges")

		return res, fmt.Errorf("failed to get room charges: %w", err)
	}

	res.FromModels(booking, payments, charges)

	return res, nil
}

// OutstandingBalances lists every booking still owing money, for the
// front-desk collections view.
func (s *serviceImpl) OutstandingBalances(ctx context.Context) (res dto.GetOutstandingBalancesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OutstandingBalances")
	defer scope.End()
	defer scope.TraceIfError(err)

	balances, err := s.payments.OutstandingBalances(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get outstanding balances")

		return res, fmt.Errorf("failed to get outstanding balances: %w", err)
	}

	res.FromModels(balances)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.PaymentStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, count, byMethod, err := s.payments.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment stats")

		return res, fmt.Errorf("failed to get payment stats: %w", err)
	}

	res.FromModels(total, count, byMethod)

	return res, nil
}

package payment

import (
	"net/http"

	"elysian/infras/otel"
	"elysian/internal/domains/payment/model/dto"
	"elysian/internal/domains/payment/service"
	"elysian/shared/constant"
	"elysian/shared/validator"
	"elysian/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	// Flat registrations: /bookings is already mounted by the booking
	// handler, and chi does not allow a second mount underneath it.
	router.Post("/bookings/{id}/payments", handler.RecordPayment)
	router.Post("/bookings/{id}/charges", handler.RecordCharge)
	router.Get("/bookings/{id}/ledger", handler.GetLedger)

	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/outstanding", handler.GetOutstanding)
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// RecordPayment records a payment against a booking.
// @Summary Record a payment
// @Description Record a payment against a booking. The amount may not exceed the outstanding balance beyond the rounding tolerance.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordPaymentRequest true "Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	id, ok := response.UUIDParam(w, r, constant.RequestParamID)
	if !ok {
		return
	}

	req := dto.RecordPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RecordPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment recorded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// RecordCharge adds an incidental charge to a stay.
// @Summary Record a room charge
// @Description Add an incidental charge to a checked-in booking. The charge raises the amount payable.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordChargeRequest true "Charge Request"
// @Success 201 {object} response.Data[dto.RoomChargeResponse] "Charge recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) RecordCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordCharge")
	defer scope.End()

	id, ok := response.UUIDParam(w, r, constant.RequestParamID)
	if !ok {
		return
	}

	req := dto.RecordChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RecordCharge(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record charge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Charge recorded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetLedger returns the financial ledger of a booking.
// @Summary Get a booking's ledger
// @Description Retrieve the full financial picture of a booking: base price, charges, payments, and the running balance.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingLedgerResponse] "Booking ledger"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/ledger [get]
// @Security BearerAuth
func (handler *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLedger")
	defer scope.End()

	id, ok := response.UUIDParam(w, r, constant.RequestParamID)
	if !ok {
		return
	}

	res, err := handler.service.ListByBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking ledger")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking ledger retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetOutstanding lists bookings that still owe money.
// @Summary Get outstanding balances
// @Description List active bookings whose payments have not yet covered the amount payable.
// @Tags Payment
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetOutstandingBalancesResponse] "Outstanding balances"
// @Failure 500 {object} response.Error
// @Router /v1/payments/outstanding [get]
// @Security BearerAuth
func (handler *Handler) GetOutstanding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOutstanding")
	defer scope.End()

	res, err := handler.service.OutstandingBalances(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get outstanding balances")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Outstanding balances retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetStats returns aggregate payment figures.
// @Summary Get payment statistics
// @Description Retrieve total collected revenue, payment count, and a per-method breakdown.
// @Tags Payment
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PaymentStatsResponse] "Payment statistics"
// @Failure 500 {object} response.Error
// @Router /v1/payments/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

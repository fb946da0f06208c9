package booking

import (
	"context"
	"net/http"

	"elysian/infras/otel"
	"elysian/internal/domains/booking/model"
	"elysian/internal/domains/booking/model/dto"
	"elysian/internal/domains/booking/service"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/validator"
	"elysian/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateWalkIn)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/status/{uuid}", handler.GetBookingStatus)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/approve", handler.Approve)
		routerGroup.Post("/{id}/reject", handler.Reject)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})

	router.Post("/requests", handler.CreateRequest)
}

// CreateWalkIn creates a front-desk booking.
// @Summary Create a walk-in booking
// @Description Create a booking at the front desk: born approved, occupies the room, records the opening payment.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateWalkInRequest true "Walk-in Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateWalkIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWalkIn")
	defer scope.End()

	req := dto.CreateWalkInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateWalkIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create walk-in booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Walk-in booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateRequest is the public online booking request.
// @Summary Submit a booking request
// @Description Submit an online booking request. The booking starts pending until staff disposition.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateOnlineRequest true "Online Booking Request"
// @Success 201 {object} response.Data[dto.BookingStatusResponse] "Booking request submitted"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateOnlineRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRequest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination. Filter source=online status=pending for the request inbox.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param source query string false "Filter by source"
// @Param room_id query string false "Filter by room"
// @Param guest_name query string false "Filter by guest name"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldGuestName),
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldStatus, model.FieldSource, model.FieldRoomID} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingStatus is the public lookup by booking reference.
// @Summary Get booking status
// @Description Look up a booking's status by its public reference. No authentication required.
// @Tags Booking
// @Accept json
// @Produce json
// @Param uuid path string true "Booking reference"
// @Success 200 {object} response.Data[dto.BookingStatusResponse] "Booking status"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/status/{uuid} [get]
func (handler *Handler) GetBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStatus")
	defer scope.End()

	bookingUUID, ok := response.UUIDParam(w, r, constant.RequestParamUUID)
	if !ok {
		return
	}

	res, err := handler.service.GetStatus(ctx, bookingUUID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID retrieves one booking.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, ok := response.UUIDParam(w, r, constant.RequestParamID)
	if !ok {
		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// Approve approves a pending booking request.
// @Summary Approve a booking
// @Description Approve a pending booking request. Availability is re-checked before the room is committed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking approved"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Approve", handler.service.Approve)
}

// Reject rejects a pending booking request.
// @Summary Reject a booking
// @Description Reject a pending booking request.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking rejected"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Reject", handler.service.Reject)
}

// CheckIn checks a guest in.
// @Summary Check in a booking
// @Description Check in an approved booking. The room becomes occupied.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Guest checked in"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckIn", handler.service.CheckIn)
}

// CheckOut checks a guest out.
// @Summary Check out a booking
// @Description Check out a checked-in booking. The room goes dirty for housekeeping.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Guest checked out"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckOut", handler.service.CheckOut)
}

// Cancel cancels a booking.
// @Summary Cancel a booking
// @Description Cancel a pending or approved booking. The room is released unless another active booking holds it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking cancelled"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Cancel", handler.service.Cancel)
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, action func(ctx context.Context, id string) (dto.BookingResponse, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, ok := response.UUIDParam(w, r, constant.RequestParamID)
	if !ok {
		return
	}

	res, err := action(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("failed to transition booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + name + " succeeded")

	response.WithJSON(w, http.StatusOK, res)
}

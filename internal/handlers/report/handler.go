package report

import (
	"net/http"

	"elysian/infras/otel"
	"elysian/internal/domains/report/service"
	"elysian/shared/constant"
	"elysian/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/rooms", handler.GetRoomStatus)
	})
}

// GetRevenue returns the revenue report.
// @Summary Get revenue report
// @Description Retrieve revenue grouped by room type, by booking source, and by month for the trailing year.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RevenueReportResponse] "Revenue report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	res, err := handler.service.Revenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomStatus returns the room status report.
// @Summary Get room status report
// @Description Retrieve the count of rooms in each housekeeping status. Never cached, the front desk needs it live.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RoomStatusReportResponse] "Room status report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatus")
	defer scope.End()

	res, err := handler.service.RoomStatus(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

package health

import (
	"net/http"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/shared/constant"
	"elysian/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	cache *goRedis.Client
	otel  otel.Otel
}

func New(db *postgres.Connection, cache *goRedis.Client, otel otel.Otel) Handler {
	return Handler{
		db:    db,
		cache: cache,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server and its backing stores are reachable.
// @Summary Health check
// @Description Report service health: database and cache connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed pinging read database")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed pinging write database")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.cache.Ping(ctx).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed pinging cache")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

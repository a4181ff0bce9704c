package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wearecars/infras/otel"
	"wearecars/internal/domains/dashboard/feed"
	"wearecars/internal/domains/dashboard/service"
	"wearecars/shared/constant"
	"wearecars/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	feed    *feed.Hub
	otel    otel.Otel
}

func New(service service.Dashboard, feed *feed.Hub, otel otel.Otel) Handler {
	return Handler{
		service: service,
		feed:    feed,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/recent", handler.GetRecent)
		routerGroup.Get("/forecast", handler.GetForecast)
		routerGroup.Get("/live", handler.Live)
	})
}

// GetSummary returns the dashboard card aggregates.
// @Summary Get dashboard summary
// @Description Total bookings, active bookings and total income across all confirmed rentals.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GetRecent returns the latest bookings.
// @Summary Get recent bookings
// @Description The five most recently confirmed bookings, newest first.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RecentBookingsResponse] "Recent bookings"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/recent [get]
// @Security BearerAuth
func (handler *Handler) GetRecent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecent")
	defer scope.End()

	recent, err := handler.service.Recent(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, recent)
}

// GetForecast projects fleet needs from current demand.
// @Summary Get fleet forecast
// @Description Projected car needs for the next month and an investment suggestion, derived from the active-booking count.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ForecastResponse] "Fleet forecast"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/forecast [get]
// @Security BearerAuth
func (handler *Handler) GetForecast(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForecast")
	defer scope.End()

	forecast, err := handler.service.Forecast(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fleet forecast")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, forecast)
}

// Live upgrades to a websocket pushing summary snapshots on every change.
// @Summary Live dashboard feed
// @Description Websocket subscription; a fresh summary snapshot is pushed on every booking change.
// @Tags Dashboard
// @Router /v1/dashboard/live [get]
// @Security BearerAuth
func (handler *Handler) Live(writer http.ResponseWriter, request *http.Request) {
	handler.feed.ServeHTTP(writer, request)
}

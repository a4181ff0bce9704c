package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wearecars/infras/otel"
	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/booking/model/dto"
	"wearecars/internal/domains/booking/service"
	"wearecars/shared/constant"
	gDto "wearecars/shared/dto"
	"wearecars/shared/validator"
	"wearecars/transport/http/response"
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
		routerGroup.Post("/quote", handler.QuoteBooking)
		routerGroup.Post("/review", handler.ReviewBooking)
		routerGroup.Post("/{draftId}/confirm", handler.ConfirmBooking)
		routerGroup.Delete("/review/{draftId}", handler.DiscardReview)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// QuoteBooking prices a possibly-incomplete booking form.
// @Summary Quote a booking
// @Description Compute an itemized price preview for a partial booking form. Unknown or missing fields contribute zero.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Itemized price breakdown"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/quote [post]
func (handler *Handler) QuoteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteBooking")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode quote request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Quote(ctx, req))
}

// ReviewBooking validates a booking and stores a priced draft.
// @Summary Review a booking
// @Description Validate the booking form, price it, and hold the snapshot as a draft awaiting confirmation.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Draft with itemized breakdown"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/review [post]
// @Security BearerAuth
func (handler *Handler) ReviewBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate review request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Review(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ConfirmBooking turns a review draft into a booking.
// @Summary Confirm a reviewed booking
// @Description Persist the draft exactly as priced at review time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param draftId path string true "Review draft ID"
// @Success 201 {object} response.Data[dto.BookingResponse] "Confirmed booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{draftId}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	draftID := chi.URLParam(request, constant.RequestParamDraftID)

	res, err := handler.service.Confirm(ctx, draftID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking confirmed by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// DiscardReview drops a pending review draft.
// @Summary Discard a review draft
// @Description Delete a pending draft so the staff member can return to the form.
// @Tags Booking
// @Accept json
// @Produce json
// @Param draftId path string true "Review draft ID"
// @Success 200 {object} response.Message "Draft discarded"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/review/{draftId} [delete]
// @Security BearerAuth
func (handler *Handler) DiscardReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardReview")
	defer scope.End()

	draftID := chi.URLParam(request, constant.RequestParamDraftID)

	if err := handler.service.DiscardReview(ctx, draftID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to discard review draft")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Review draft discarded")
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination, newest first.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param car_type query string false "Filter by car type"
// @Param fuel_type query string false "Filter by fuel type"
// @Param payment_method query string false "Filter by payment method"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldCarType, model.FieldFuelType, model.FieldPaymentMethod} {
		if value := request.URL.Query().Get(field); value != "" {
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

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID retrieves one booking.
// @Summary Get a booking
// @Description Retrieve a single booking by its ID.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

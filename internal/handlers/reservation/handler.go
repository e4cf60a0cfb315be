package reservation

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/reservation/model/dto"
	"condovia/internal/domains/reservation/service"
	"condovia/shared/constant"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/latest", handler.GetLatestReservation)
	})
}

// CreateReservation books an amenity slot.
// @Summary Book a slot
// @Description Book an amenity slot for a given date and time. The slot is identified deterministically and at most one booking can ever exist for it; a taken slot yields 409.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error "Slot already booked"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created for slot " + res.SlotID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists every reservation, newest first.
// @Summary Get all reservations
// @Description Retrieve every reservation ordered by creation time descending. Manager only.
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetLatestReservation returns the caller's most recent reservation.
// @Summary Get own latest reservation
// @Description Retrieve the authenticated user's most recent reservation, or 204 when they have none.
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.ReservationResponse] "Latest reservation"
// @Success 204 "No reservation"
// @Failure 401 {object} response.Error
// @Router /v1/reservations/latest [get]
// @Security BearerAuth
func (handler *Handler) GetLatestReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatestReservation")
	defer scope.End()

	res, err := handler.service.GetLatest(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest reservation")

		response.WithError(writer, err)

		return
	}

	if res == nil {
		writer.WriteHeader(http.StatusNoContent)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

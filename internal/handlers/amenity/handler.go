package amenity

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/amenity/model"
	"condovia/internal/domains/amenity/model/dto"
	"condovia/internal/domains/amenity/service"
	"condovia/shared"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/amenities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAmenity)
		routerGroup.Get("/", handler.GetAmenities)
		routerGroup.Get("/{id}", handler.GetAmenityByID)
		routerGroup.Put("/{id}", handler.UpdateAmenity)
		routerGroup.Delete("/{id}", handler.DeleteAmenity)
	})
}

// CreateAmenity registers a new bookable amenity.
// @Summary Create an amenity
// @Description Register a new amenity with a stable slug identifier. Manager only.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Amenity Request"
// @Success 201 {object} response.Message "Amenity created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAmenity")
	defer scope.End()

	req := dto.CreateAmenityRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Amenity created successfully")
}

// GetAmenities retrieves all amenities based on query parameters.
// @Summary Get all amenities
// @Description Retrieve all amenities with optional filtering and pagination.
// @Tags Amenity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of amenities"
// @Failure 401 {object} response.Error
// @Router /v1/amenities [get]
// @Security BearerAuth
func (handler *Handler) GetAmenities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := shared.ConvertStringToBool(request.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	amenities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, amenities)
}

// GetAmenityByID retrieves an amenity by its ID.
// @Summary Get an amenity by ID
// @Description Retrieve an amenity by its slug identifier.
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Data[dto.AmenityResponse] "Amenity details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/amenities/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAmenityByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenityByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	amenity, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenity by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, amenity)
}

// UpdateAmenity updates an existing amenity by its ID.
// @Summary Update an amenity by ID
// @Description Update the details of an existing amenity. Manager only.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param request body dto.UpdateAmenityRequest true "Update Amenity Request"
// @Success 200 {object} response.Message "Amenity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/amenities/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAmenity")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateAmenityRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Amenity updated successfully")
}

// DeleteAmenity deletes an amenity by its ID.
// @Summary Delete an amenity by ID
// @Description Delete an amenity. Existing reservations keep their slot IDs. Manager only.
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message "Amenity deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/amenities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAmenity")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Amenity deleted successfully")
}

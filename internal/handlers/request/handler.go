package request

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/request/model"
	"condovia/internal/domains/request/model/dto"
	"condovia/internal/domains/request/service"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
		routerGroup.Patch("/{id}/status", handler.UpdateRequestStatus)
		routerGroup.Delete("/{id}", handler.DeleteRequest)
	})
}

// CreateRequest opens a new maintenance request.
// @Summary Open a maintenance request
// @Description Open a new maintenance request. The request starts in the open status.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Request Request"
// @Success 201 {object} response.Message "Request created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance request")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Request created successfully")
}

// GetRequests retrieves maintenance requests based on query parameters.
// @Summary Get maintenance requests
// @Description Retrieve maintenance requests with optional filtering and pagination. Residents only see their own.
// @Tags Request
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetRequestsResponse] "List of requests"
// @Failure 401 {object} response.Error
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	status := request.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Residents only list their own requests
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleManager {
		userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
		if !ok || userID == "" {
			err := failure.Unauthorized("unauthorized")
			scope.TraceError(err)
			log.Error().Msg("failed to get user ID from context")
			response.WithError(writer, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCreatedBy,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, requests)
}

// GetRequestByID retrieves a maintenance request by its ID.
// @Summary Get a maintenance request by ID
// @Description Retrieve a maintenance request. Residents may only access their own.
// @Tags Request
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse] "Request details"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance request by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRequestStatus moves a maintenance request through its lifecycle.
// @Summary Update a request's status
// @Description Set a maintenance request's status to open, in_progress or done. Manager only.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "Update Request Status Request"
// @Success 200 {object} response.Message "Request status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRequestStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequestStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateRequestStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance request status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Request status updated successfully")
}

// DeleteRequest deletes a maintenance request by its ID.
// @Summary Delete a maintenance request by ID
// @Description Delete a maintenance request. Manager only.
// @Tags Request
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequest")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete maintenance request")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Request deleted successfully")
}

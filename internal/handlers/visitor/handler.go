package visitor

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/visitor/model"
	"condovia/internal/domains/visitor/model/dto"
	"condovia/internal/domains/visitor/service"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Visitor
	otel    otel.Otel
}

func New(service service.Visitor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitors", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVisitor)
		routerGroup.Get("/", handler.GetVisitors)
		routerGroup.Get("/{id}", handler.GetVisitorByID)
		routerGroup.Delete("/{id}", handler.DeleteVisitor)
	})
}

// CreateVisitor pre-registers a visitor for gate access.
// @Summary Pre-register a visitor
// @Description Pre-register a visitor, optionally attaching a base64-encoded photo.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitorRequest true "Create Visitor Request"
// @Success 201 {object} response.Message "Visitor registered successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/visitors [post]
// @Security BearerAuth
func (handler *Handler) CreateVisitor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVisitor")
	defer scope.End()

	req := dto.CreateVisitorRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register visitor")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Visitor registered successfully")
}

// GetVisitors retrieves visitors based on query parameters.
// @Summary Get visitors
// @Description Retrieve pre-registered visitors with optional filtering and pagination. Residents only see their own registrations.
// @Tags Visitor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param apartment query string false "Filter by apartment"
// @Param block query string false "Filter by block"
// @Success 200 {object} response.Data[dto.GetVisitorsResponse] "List of visitors"
// @Failure 401 {object} response.Error
// @Router /v1/visitors [get]
// @Security BearerAuth
func (handler *Handler) GetVisitors(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	apartment := request.URL.Query().Get(model.FieldApartment)
	block := request.URL.Query().Get(model.FieldBlock)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Residents only list the visitors they registered
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

	if apartment != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApartment,
			Operator: gDto.FilterOperatorEq,
			Value:    apartment,
			Table:    model.TableName,
		})
	}

	if block != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBlock,
			Operator: gDto.FilterOperatorEq,
			Value:    block,
			Table:    model.TableName,
		})
	}

	visitors, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitors")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, visitors)
}

// GetVisitorByID retrieves a visitor by its ID.
// @Summary Get a visitor by ID
// @Description Retrieve a visitor registration. Residents may only access their own.
// @Tags Visitor
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} response.Data[dto.VisitorResponse] "Visitor details"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/visitors/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVisitorByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitorByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	visitor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, visitor)
}

// DeleteVisitor deletes a visitor registration by its ID.
// @Summary Delete a visitor by ID
// @Description Delete a visitor registration and its stored photo. Residents may only delete their own.
// @Tags Visitor
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} response.Message "Visitor deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/visitors/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVisitor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVisitor")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete visitor")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Visitor deleted successfully")
}

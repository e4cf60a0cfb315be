package user

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/user/model"
	"condovia/internal/domains/user/model/dto"
	"condovia/internal/domains/user/service"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Put("/{id}", handler.UpdateUser)
	})
}

// GetUsers retrieves all users based on query parameters.
// @Summary Get all users
// @Description Retrieve all users with optional filtering and pagination. Manager only.
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Param role query string false "Filter by role"
// @Param block query string false "Filter by block"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	email := request.URL.Query().Get(model.FieldEmail)
	role := request.URL.Query().Get(model.FieldRole)
	block := request.URL.Query().Get(model.FieldBlock)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
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

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, users)
}

// GetUserByID retrieves a user by their ID.
// @Summary Get a user by ID
// @Description Retrieve a user by their unique identifier.
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// UpdateUser updates an existing user by their ID.
// @Summary Update a user by ID
// @Description Update a user's profile. Residents may only update their own.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Message "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User updated successfully")
}

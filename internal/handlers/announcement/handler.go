package announcement

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/announcement/model"
	"condovia/internal/domains/announcement/model/dto"
	"condovia/internal/domains/announcement/service"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Announcement
	otel    otel.Otel
}

func New(service service.Announcement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/announcements", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAnnouncement)
		routerGroup.Get("/", handler.GetAnnouncements)
		routerGroup.Get("/{id}", handler.GetAnnouncementByID)
		routerGroup.Put("/{id}", handler.UpdateAnnouncement)
		routerGroup.Delete("/{id}", handler.DeleteAnnouncement)
	})
}

// CreateAnnouncement publishes a new announcement.
// @Summary Publish an announcement
// @Description Publish a new announcement to all residents. Manager only.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Create Announcement Request"
// @Success 201 {object} response.Message "Announcement published successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/announcements [post]
// @Security BearerAuth
func (handler *Handler) CreateAnnouncement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAnnouncement")
	defer scope.End()

	req := dto.CreateAnnouncementRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create announcement")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Announcement published successfully")
}

// GetAnnouncements retrieves all announcements based on query parameters.
// @Summary Get all announcements
// @Description Retrieve all announcements with optional filtering and pagination.
// @Tags Announcement
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetAnnouncementsResponse] "List of announcements"
// @Failure 401 {object} response.Error
// @Router /v1/announcements [get]
// @Security BearerAuth
func (handler *Handler) GetAnnouncements(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncements")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	// Newest first unless the caller asked for another order
	if queryParams.SortBy == "" {
		queryParams.SortBy = constant.FieldCreatedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	category := request.URL.Query().Get(model.FieldCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	announcements, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get announcements")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, announcements)
}

// GetAnnouncementByID retrieves an announcement by its ID.
// @Summary Get an announcement by ID
// @Description Retrieve an announcement by its unique identifier.
// @Tags Announcement
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Data[dto.AnnouncementResponse] "Announcement details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/announcements/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAnnouncementByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncementByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	announcement, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get announcement by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, announcement)
}

// UpdateAnnouncement updates an existing announcement by its ID.
// @Summary Update an announcement by ID
// @Description Update the details of an existing announcement. Manager only.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Update Announcement Request"
// @Success 200 {object} response.Message "Announcement updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/announcements/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAnnouncement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAnnouncement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateAnnouncementRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update announcement")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Announcement updated successfully")
}

// DeleteAnnouncement deletes an announcement by its ID.
// @Summary Delete an announcement by ID
// @Description Delete an announcement. Manager only.
// @Tags Announcement
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Message "Announcement deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/announcements/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAnnouncement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAnnouncement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete announcement")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Announcement deleted successfully")
}

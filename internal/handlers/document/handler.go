package document

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/document/model"
	"condovia/internal/domains/document/model/dto"
	"condovia/internal/domains/document/service"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Delete("/{id}", handler.DeleteDocument)
	})
}

// CreateDocument publishes a condominium document or invoice.
// @Summary Publish a document
// @Description Publish a document either by external URL or by uploading a base64-encoded file. Manager only.
// @Tags Document
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentRequest true "Create Document Request"
// @Success 201 {object} response.Message "Document published successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/documents [post]
// @Security BearerAuth
func (handler *Handler) CreateDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDocument")
	defer scope.End()

	req := dto.CreateDocumentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create document")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Document published successfully")
}

// GetDocuments retrieves all documents based on query parameters.
// @Summary Get all documents
// @Description Retrieve all documents with optional filtering and pagination.
// @Tags Document
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param kind query string false "Filter by kind"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of documents"
// @Failure 401 {object} response.Error
// @Router /v1/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	// Newest first unless the caller asked for another order
	if queryParams.SortBy == "" {
		queryParams.SortBy = constant.FieldCreatedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	kind := request.URL.Query().Get(model.FieldKind)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if kind != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	documents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, documents)
}

// DeleteDocument deletes a document by its ID.
// @Summary Delete a document by ID
// @Description Delete a document and its uploaded file, if any. Manager only.
// @Tags Document
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Document deleted successfully")
}

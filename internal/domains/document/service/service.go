package service

import (
	"context"
	"fmt"

	"condovia/config"
	"condovia/infras/otel"
	"condovia/infras/s3"
	"condovia/internal/domains/document/model"
	"condovia/internal/domains/document/model/dto"
	"condovia/internal/domains/document/repository"
	"condovia/shared"
	"condovia/shared/base64"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllDocument = "document:gets"
	cacheCountDocument  = "document:count"
)

var fileExtensions = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

type Document interface {
	Create(ctx context.Context, req dto.CreateDocumentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Document
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Document, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3Client s3.S3) Document {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3Client,
	}
}

// Create stores a document row. The file content comes either as an
// external URL or as an embedded base64 payload uploaded to S3, never both.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDocumentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if (req.URL == constant.Empty) == (req.File == constant.Empty) {
		return failure.BadRequestFromString("exactly one of url or file must be provided") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := dto.NewDocumentID()
	url := req.URL

	if req.File != constant.Empty {
		data, contentType, err := base64.Decode(req.File)
		if err != nil {
			return failure.BadRequestFromString("file must be a valid base64 payload") // nolint:wrapcheck
		}

		fileName := id + fileExtensions[contentType]

		url, err = s.s3.UploadFileBytes(ctx, constant.Empty, model.FileDirectory, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload document file")

			return fmt.Errorf("failed to upload document file: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(id, user, url)); err != nil {
		log.Error().Err(err).Msg("failed to create document")

		return fmt.Errorf("failed to create document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDocument, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for documents")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save documents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		log.Error().Msg("document not found")

		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	// External URLs are left alone; only files we uploaded live in the bucket
	objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, document.URL)
	if objectName != constant.Empty {
		if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("object", objectName).Msg("failed to delete document file from S3")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	return nil
}

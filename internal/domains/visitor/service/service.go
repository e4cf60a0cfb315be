package service

import (
	"context"
	"fmt"

	"condovia/config"
	"condovia/infras/otel"
	"condovia/infras/s3"
	"condovia/internal/domains/visitor/model"
	"condovia/internal/domains/visitor/model/dto"
	"condovia/internal/domains/visitor/repository"
	"condovia/shared"
	"condovia/shared/base64"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetVisitor    = "visitor:get"
	cacheGetAllVisitor = "visitor:gets"
	cacheCountVisitor  = "visitor:count"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type Visitor interface {
	Create(ctx context.Context, req dto.CreateVisitorRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitorsResponse, error)
	Get(ctx context.Context, id string) (dto.VisitorResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Visitor
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Visitor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3Client s3.S3) Visitor {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3Client,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVisitorRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := dto.NewVisitorID()

	var photoURL *string

	if req.Photo != "" {
		data, contentType, err := base64.Decode(req.Photo)
		if err != nil {
			return failure.BadRequestFromString("photo must be a valid base64 image") // nolint:wrapcheck
		}

		fileName := id + photoExtensions[contentType]

		url, err := s.s3.UploadFileBytes(ctx, constant.Empty, model.PhotoDirectory, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload visitor photo")

			return fmt.Errorf("failed to upload visitor photo: %w", err)
		}

		photoURL = &url
	}

	if err = s.repo.Insert(ctx, req.ToModel(id, user, photoURL)); err != nil {
		log.Error().Err(err).Msg("failed to create visitor")

		return fmt.Errorf("failed to create visitor: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVisitor)
		shared.InvalidateCaches(c, s.cache, cacheCountVisitor)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVisitorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVisitor, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for visitors")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visitors")

		return res, fmt.Errorf("failed to count visitors: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitors")

		return res, fmt.Errorf("failed to get visitors: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visitors to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VisitorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitor")

		return res, fmt.Errorf("failed to get visitor: %w", err)
	}

	if visitor.ID == constant.Empty {
		return res, failure.NotFound("visitor not found") // nolint:wrapcheck
	}

	// Residents may only see visitors they registered
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleManager && visitor.CreatedBy != user {
		return res, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	res.FromModel(visitor)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	visitor, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitor")

		return fmt.Errorf("failed to get visitor: %w", err)
	}

	if visitor.ID == constant.Empty {
		log.Error().Msg("visitor not found")

		return failure.NotFound("visitor not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleManager && visitor.CreatedBy != user {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete visitor")

		return fmt.Errorf("failed to delete visitor: %w", err)
	}

	if visitor.PhotoURL != nil {
		objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, *visitor.PhotoURL)
		if objectName != constant.Empty {
			if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, constant.Empty, objectName); err != nil {
				log.Error().Err(err).Str("object", objectName).Msg("failed to delete visitor photo from S3")
			}
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVisitor)
		shared.InvalidateCaches(c, s.cache, cacheCountVisitor)
	}()

	return nil
}

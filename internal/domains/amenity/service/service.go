package service

import (
	"context"
	"fmt"

	"condovia/config"
	"condovia/infras/otel"
	"condovia/internal/domains/amenity/model"
	"condovia/internal/domains/amenity/model/dto"
	"condovia/internal/domains/amenity/repository"
	"condovia/shared"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAmenity    = "amenity:get"
	cacheGetAllAmenity = "amenity:gets"
	cacheCountAmenity  = "amenity:count"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAmenitiesResponse, error)
	Get(ctx context.Context, id string) (dto.AmenityResponse, error)
	Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Amenity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if exists {
		return failure.Conflict("amenity already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create amenity")

		return fmt.Errorf("failed to create amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
		shared.InvalidateCaches(c, s.cache, cacheCountAmenity)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAmenity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count amenities")

		return res, fmt.Errorf("failed to count amenities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenities")

		return res, fmt.Errorf("failed to get amenities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAmenity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenity")

		return res, nil
	}

	amenity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity")

		return res, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return res, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	res.FromModel(amenity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateAmenityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		log.Error().Msg("amenity not found")

		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update amenity")

		return fmt.Errorf("failed to update amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAmenity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete amenity from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
		shared.InvalidateCaches(c, s.cache, cacheCountAmenity)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		log.Error().Msg("amenity not found")

		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity")

		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAmenity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete amenity from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
		shared.InvalidateCaches(c, s.cache, cacheCountAmenity)
	}()

	return nil
}

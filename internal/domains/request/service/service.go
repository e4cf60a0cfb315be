package service

import (
	"context"
	"fmt"

	"condovia/config"
	"condovia/infras/otel"
	"condovia/internal/domains/request/model"
	"condovia/internal/domains/request/model/dto"
	"condovia/internal/domains/request/repository"
	"condovia/shared"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest    = "request:get"
	cacheGetAllRequest = "request:gets"
	cacheCountRequest  = "request:count"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error)
	Get(ctx context.Context, id string) (dto.RequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateRequestStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Request
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Request, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Request {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance request")

		return fmt.Errorf("failed to create maintenance request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance requests")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance requests")

		return res, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance requests")

		return res, fmt.Errorf("failed to get maintenance requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance request")

		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance request")

		return res, fmt.Errorf("failed to get maintenance request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("maintenance request not found") // nolint:wrapcheck
	}

	// Residents may only see their own requests
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleManager && request.CreatedBy != user {
		return res, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	res.FromModel(request)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRequestStatusRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance request exists")

		return fmt.Errorf("failed to check if maintenance request exists: %w", err)
	}

	if !exist {
		log.Error().Msg("maintenance request not found")

		return failure.NotFound("maintenance request not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance request status")

		return fmt.Errorf("failed to update maintenance request status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance request exists")

		return fmt.Errorf("failed to check if maintenance request exists: %w", err)
	}

	if !exist {
		log.Error().Msg("maintenance request not found")

		return failure.NotFound("maintenance request not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete maintenance request")

		return fmt.Errorf("failed to delete maintenance request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()

	return nil
}

package service

import (
	"context"
	"fmt"

	"condovia/config"
	"condovia/infras/kafka"
	"condovia/infras/otel"
	"condovia/internal/domains/announcement/model"
	"condovia/internal/domains/announcement/model/dto"
	"condovia/internal/domains/announcement/repository"
	"condovia/shared"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAnnouncement    = "announcement:get"
	cacheGetAllAnnouncement = "announcement:gets"
	cacheCountAnnouncement  = "announcement:count"

	eventAnnouncementPublished = "announcement.published"
)

type Announcement interface {
	Create(ctx context.Context, req dto.CreateAnnouncementRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAnnouncementsResponse, error)
	Get(ctx context.Context, id string) (dto.AnnouncementResponse, error)
	Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Announcement
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Announcement, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafkaClient kafka.Client) Announcement {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafkaClient,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	announcement := req.ToModel(user)

	if err = s.repo.Insert(ctx, announcement); err != nil {
		log.Error().Err(err).Msg("failed to create announcement")

		return fmt.Errorf("failed to create announcement: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)

		event := kafka.Message{
			Key: announcement.ID,
			Value: map[string]any{
				"type":     eventAnnouncementPublished,
				"id":       announcement.ID,
				"title":    announcement.Title,
				"category": announcement.Category,
			},
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicNotifications, event); err != nil {
			log.Error().Err(err).Str("id", announcement.ID).Msg("failed to publish announcement event")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAnnouncementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAnnouncement, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcements")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count announcements")

		return res, fmt.Errorf("failed to count announcements: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcements")

		return res, fmt.Errorf("failed to get announcements: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcements to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AnnouncementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAnnouncement, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcement")

		return res, nil
	}

	announcement, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcement")

		return res, fmt.Errorf("failed to get announcement: %w", err)
	}

	if announcement.ID == constant.Empty {
		return res, failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	res.FromModel(announcement)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcement to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateAnnouncementRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if announcement exists")

		return fmt.Errorf("failed to check if announcement exists: %w", err)
	}

	if !exist {
		log.Error().Msg("announcement not found")

		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update announcement")

		return fmt.Errorf("failed to update announcement: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAnnouncement, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete announcement from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if announcement exists")

		return fmt.Errorf("failed to check if announcement exists: %w", err)
	}

	if !exist {
		log.Error().Msg("announcement not found")

		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete announcement")

		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAnnouncement, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete announcement from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)
	}()

	return nil
}

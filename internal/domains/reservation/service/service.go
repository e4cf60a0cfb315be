package service

import (
	"context"
	"fmt"
	"sort"

	"condovia/config"
	"condovia/infras/kafka"
	"condovia/infras/otel"
	"condovia/infras/postgres"
	amenityModel "condovia/internal/domains/amenity/model"
	amenityRepo "condovia/internal/domains/amenity/repository"
	"condovia/internal/domains/reservation/model"
	"condovia/internal/domains/reservation/model/dto"
	"condovia/internal/domains/reservation/repository"
	"condovia/shared"
	"condovia/shared/cache"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
	"condovia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReservation = "reservation:gets"

	eventReservationCreated = "reservation.created"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	GetLatest(ctx context.Context) (*dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	amenityRepo amenityRepo.Amenity
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Reservation, amenityRepo amenityRepo.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafkaClient kafka.Client) Reservation {
	return &serviceImpl{
		repo:        repo,
		amenityRepo: amenityRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafkaClient,
	}
}

// Create books a slot. The request is validated before any store access,
// the slot identifier is derived deterministically from amenity, date and
// time, and uniqueness is left entirely to the reservations primary key:
// a unique violation from the insert is the only conflict signal, so two
// concurrent requests for the same slot can never both succeed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	requester, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if requester == constant.Empty {
		return res, failure.Unauthorized("missing requester identity") // nolint:wrapcheck
	}

	if err = req.Validate(); err != nil {
		return res, err
	}

	amenityExists, err := s.amenityRepo.Exist(ctx, shared.FilterByID(req.AmenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return res, fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !amenityExists {
		return res, failure.BadRequestFromString("amenity does not exist") // nolint:wrapcheck
	}

	reservation := req.ToModel(requester)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Warn().Str("slot_id", reservation.SlotID).Msg("slot already booked")

			return res, failure.Conflict("slot already booked") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)

		event := kafka.Message{
			Key: reservation.SlotID,
			Value: map[string]any{
				"type":         eventReservationCreated,
				"slot_id":      reservation.SlotID,
				"amenity_id":   reservation.AmenityID,
				"requester_id": reservation.RequesterID,
				"display_name": reservation.DisplayName,
				"date":         reservation.ReservationDate,
				"time":         reservation.ReservationTime,
			},
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicNotifications, event); err != nil {
			log.Error().Err(err).Str("slot_id", reservation.SlotID).Msg("failed to publish reservation event")
		}
	}()

	return res, nil
}

// GetAll returns every reservation ordered by creation timestamp, newest
// first. Rows are fetched without a store-side ORDER BY and sorted here;
// a read failure degrades to an empty listing instead of an error.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, gDto.QueryParams{}, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations, degrading to empty listing")
		res.FromModels(nil)

		return res, nil
	}

	sortNewestFirst(models)
	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

// GetLatest returns the requester's most recent reservation, or nil when
// they have none. The newest row is selected here rather than by the store.
func (s *serviceImpl) GetLatest(ctx context.Context) (res *dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLatest")
	defer scope.End()

	requester, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if requester == constant.Empty {
		return nil, failure.Unauthorized("missing requester identity") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorEq,
				Value:    requester,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("requester_id", requester).Msg("failed to get own reservations, degrading to none")

		return nil, nil
	}

	if len(models) == 0 {
		return nil, nil
	}

	latest := models[0]
	for _, mod := range models[1:] {
		if mod.CreatedAtUnix > latest.CreatedAtUnix {
			latest = mod
		}
	}

	res = &dto.ReservationResponse{}
	res.FromModel(latest)

	return res, nil
}

func sortNewestFirst(models []model.Reservation) {
	sort.Slice(models, func(i, j int) bool {
		return models[i].CreatedAtUnix > models[j].CreatedAtUnix
	})
}

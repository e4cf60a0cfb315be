package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/config"
	kafkaMocks "condovia/infras/kafka/mocks"
	"condovia/infras/otel/mocks"
	amenityMocks "condovia/internal/domains/amenity/mocks"
	reservationMocks "condovia/internal/domains/reservation/mocks"
	"condovia/internal/domains/reservation/model"
	"condovia/internal/domains/reservation/model/dto"
	"condovia/internal/domains/reservation/service"
	cacheMocks "condovia/shared/cache/mocks"
	"condovia/shared/constant"
	"condovia/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.Reservation, *reservationMocks.MockReservation, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache, *kafkaMocks.MockClient) {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockAmenityRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAmenityRepo, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockAmenityRepo, mockCache, mockKafka
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAmenityRepo, mockCache, mockKafka := newService(ctrl)

	validReq := dto.CreateReservationRequest{
		AmenityID:       "gym",
		DisplayName:     "Alex Souza",
		ReservationDate: "2026-01-07",
		ReservationTime: "14:30",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   error
		wantSlot  string
	}{
		{
			name: "successful booking",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func() {
				mockAmenityRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
						assert.Equal(t, "gym_2026-01-07_14-30", reservation.SlotID)
						assert.Equal(t, "user-1", reservation.RequesterID)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicNotifications, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantSlot: "gym_2026-01-07_14-30",
		},
		{
			name: "slot already booked maps unique violation to conflict",
			ctx:  authedCtx("user-2"),
			req:  validReq,
			setupMock: func() {
				mockAmenityRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr: failure.Conflict("slot already booked"),
		},
		{
			name:      "missing requester identity",
			ctx:       context.Background(),
			req:       validReq,
			setupMock: func() {},
			wantErr:   failure.Unauthorized("missing requester identity"),
		},
		{
			name: "invalid date never reaches the repository",
			ctx:  authedCtx("user-1"),
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "Alex Souza",
				ReservationDate: "2026-02-30",
				ReservationTime: "14:30",
			},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("reservation_date must be a valid calendar date in YYYY-MM-DD format"),
		},
		{
			name: "invalid time never reaches the repository",
			ctx:  authedCtx("user-1"),
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "Alex Souza",
				ReservationDate: "2026-01-07",
				ReservationTime: "12:61",
			},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("reservation_time must be a valid time in HH:MM format"),
		},
		{
			name: "blank display name never reaches the repository",
			ctx:  authedCtx("user-1"),
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "   ",
				ReservationDate: "2026-01-07",
				ReservationTime: "14:30",
			},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("display_name must not be blank"),
		},
		{
			name: "unknown amenity",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func() {
				mockAmenityRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.BadRequestFromString("amenity does not exist"),
		},
		{
			name: "insert error other than unique violation",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func() {
				mockAmenityRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: errors.New("failed to create reservation"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSlot, res.SlotID)
			}
		})
	}

	// Let the post-insert goroutine drain before the controller finishes
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newService(ctrl)

	t.Run("sorts newest first", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		models := []model.Reservation{
			{SlotID: "gym_2026-01-07_08-00", CreatedAtUnix: 100},
			{SlotID: "gym_2026-01-07_10-00", CreatedAtUnix: 300},
			{SlotID: "gym_2026-01-07_09-00", CreatedAtUnix: 200},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, "gym_2026-01-07_10-00", res.Reservations[0].SlotID)
		assert.Equal(t, "gym_2026-01-07_09-00", res.Reservations[1].SlotID)
		assert.Equal(t, "gym_2026-01-07_08-00", res.Reservations[2].SlotID)
	})

	t.Run("read failure degrades to empty listing", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
		assert.Empty(t, res.Reservations)
	})

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_GetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _ := newService(ctrl)

	t.Run("picks the newest of the requester's reservations", func(t *testing.T) {
		models := []model.Reservation{
			{SlotID: "gym_2026-01-05_08-00", RequesterID: "user-1", CreatedAtUnix: 100},
			{SlotID: "gym_2026-01-07_10-00", RequesterID: "user-1", CreatedAtUnix: 300},
			{SlotID: "gym_2026-01-06_09-00", RequesterID: "user-1", CreatedAtUnix: 200},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models, nil)

		res, err := svc.GetLatest(authedCtx("user-1"))

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, "gym_2026-01-07_10-00", res.SlotID)
	})

	t.Run("no reservations yields nil without error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.GetLatest(authedCtx("user-1"))

		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("read failure degrades to none", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		res, err := svc.GetLatest(authedCtx("user-1"))

		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("missing requester identity", func(t *testing.T) {
		res, err := svc.GetLatest(context.Background())

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

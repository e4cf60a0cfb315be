package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"condovia/infras/otel"
	"condovia/infras/postgres"
	"condovia/internal/domains/reservation/model"
	gDto "condovia/shared/dto"
	gRepo "condovia/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldSlotID, db, otel),
		db:         db,
		otel:       otel,
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"condovia/infras/otel"
	"condovia/infras/postgres"
	"condovia/internal/domains/request/model"
	gDto "condovia/shared/dto"
	gRepo "condovia/shared/repository"
)

type Request interface {
	Insert(ctx context.Context, model model.Request) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Request, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Request, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Request]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Request](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

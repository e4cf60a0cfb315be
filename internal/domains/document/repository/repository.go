package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"condovia/infras/otel"
	"condovia/infras/postgres"
	"condovia/internal/domains/document/model"
	gDto "condovia/shared/dto"
	gRepo "condovia/shared/repository"
)

type Document interface {
	Insert(ctx context.Context, model model.Document) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Document, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Document, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Document]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Document {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Document](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
